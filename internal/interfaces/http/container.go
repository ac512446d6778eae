package http

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reconUsecases "github.com/tessera-live/tessera/internal/application/reconciliation/usecases"
	statsUsecases "github.com/tessera-live/tessera/internal/application/statistics/usecases"
	"github.com/tessera-live/tessera/internal/infrastructure/auth"
	"github.com/tessera-live/tessera/internal/infrastructure/cache"
	"github.com/tessera-live/tessera/internal/infrastructure/config"
	"github.com/tessera-live/tessera/internal/infrastructure/repository"
	"github.com/tessera-live/tessera/internal/infrastructure/services"
	"github.com/tessera-live/tessera/internal/interfaces/http/handlers"
	"github.com/tessera-live/tessera/internal/interfaces/http/middleware"
	shareddb "github.com/tessera-live/tessera/internal/shared/db"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

// Container wires repositories, use cases and handlers. The AMQP publisher is
// optional: when nil, confirmations simply skip the announcement.
type Container struct {
	EventStatisticsHandler *handlers.EventStatisticsHandler
	ReconciliationHandler  *handlers.ReconciliationHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

func NewContainer(
	db *gorm.DB,
	redisClient *redis.Client,
	publisher reconUsecases.PaymentEventPublisher,
	cfg *config.Config,
	log logger.Interface,
) *Container {
	orgRepo := repository.NewOrganizationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	var statsCache *cache.EventStatisticsCache
	if redisClient != nil {
		ttl := time.Duration(cfg.Statistics.CacheTTLSeconds) * time.Second
		statsCache = cache.NewEventStatisticsCache(redisClient, ttl)
	}

	var cacheForList statsUsecases.EventStatisticsCache
	var invalidator reconUsecases.StatisticsInvalidator
	if statsCache != nil {
		cacheForList = statsCache
		invalidator = statsCache
	}

	listUC := statsUsecases.NewListEventStatisticsUseCase(orgRepo, eventRepo, cacheForList, log)
	getStatUC := statsUsecases.NewGetEventStatisticUseCase(eventRepo)
	loadCategoriesUC := statsUsecases.NewLoadCategoriesWithStatisticsUseCase(categoryRepo, ticketRepo, reservationRepo, transactionRepo, log)
	getSingleUC := statsUsecases.NewGetSingleEventWithStatisticsUseCase(orgRepo, eventRepo, ticketRepo, loadCategoriesUC, log)
	grossIncomeUC := statsUsecases.NewGrossIncomeUseCase(eventRepo)
	noSeatsUC := statsUsecases.NewNoSeatsAvailableUseCase(eventRepo, categoryRepo)

	txManager := shareddb.NewTransactionManager(db)
	paymentService := services.NewOfflinePaymentService(reservationRepo, transactionRepo, txManager, log)

	bulkConfirmUC := reconUsecases.NewBulkConfirmPaymentsUseCase(orgRepo, eventRepo, paymentService, publisher, invalidator, log)
	confirmUC := reconUsecases.NewConfirmOfflinePaymentUseCase(orgRepo, eventRepo, paymentService, publisher, invalidator, log)
	deleteUC := reconUsecases.NewDeleteOfflinePaymentUseCase(orgRepo, eventRepo, paymentService, invalidator, log)
	pendingUC := reconUsecases.NewPendingPaymentsUseCase(orgRepo, eventRepo, reservationRepo)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)

	return &Container{
		EventStatisticsHandler: handlers.NewEventStatisticsHandler(listUC, getStatUC, getSingleUC, grossIncomeUC, noSeatsUC, log),
		ReconciliationHandler:  handlers.NewReconciliationHandler(bulkConfirmUC, confirmUC, deleteUC, pendingUC, log),
		AuthMiddleware:         middleware.NewAuthMiddleware(jwtService, log),
	}
}
