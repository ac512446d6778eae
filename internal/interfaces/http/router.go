package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tessera-live/tessera/internal/infrastructure/config"
	"github.com/tessera-live/tessera/internal/interfaces/http/middleware"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

type Router struct {
	engine    *gin.Engine
	container *Container
	cfg       *config.Config
	logger    logger.Interface
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())

	return &Router{
		engine:    engine,
		container: container,
		cfg:       cfg,
		logger:    log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	api.Use(r.container.AuthMiddleware.RequireAuth())

	events := api.Group("/events")
	{
		events.GET("", r.container.EventStatisticsHandler.ListEventStatistics)
		events.GET("/:short_name", r.container.EventStatisticsHandler.GetSingleEventWithStatistics)
		events.GET("/:short_name/pending-payments", r.container.ReconciliationHandler.GetPendingPayments)
		events.POST("/:short_name/payments/bulk-confirmation", r.container.ReconciliationHandler.BulkConfirmPayments)
		events.PUT("/:short_name/payments/:reservation_id/confirm", r.container.ReconciliationHandler.ConfirmPayment)
		events.DELETE("/:short_name/payments/:reservation_id", r.container.ReconciliationHandler.DeletePayment)
	}

	// ID-based accessors sit under a separate prefix; they trust the caller
	// to have resolved the event through a guarded listing first.
	stats := api.Group("/event-statistics")
	{
		stats.GET("/:event_id", r.container.EventStatisticsHandler.GetEventStatistic)
		stats.GET("/:event_id/gross-income", r.container.EventStatisticsHandler.GetGrossIncome)
		stats.GET("/:event_id/sold-out", r.container.EventStatisticsHandler.GetSoldOut)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
