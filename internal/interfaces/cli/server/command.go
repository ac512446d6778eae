package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	reconUsecases "github.com/tessera-live/tessera/internal/application/reconciliation/usecases"
	"github.com/tessera-live/tessera/internal/infrastructure/config"
	"github.com/tessera-live/tessera/internal/infrastructure/database"
	"github.com/tessera-live/tessera/internal/infrastructure/migration"
	"github.com/tessera-live/tessera/internal/infrastructure/pubsub"
	httpInterface "github.com/tessera-live/tessera/internal/interfaces/http"
	"github.com/tessera-live/tessera/internal/shared/goroutine"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the HTTP server exposing the event statistics and offline payment reconciliation API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(env)
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func runServer(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	switch cfg.Server.Mode {
	case "release", "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	manager := migration.NewManager(env)
	log.Infow("running database migrations", "strategy", manager.GetStrategy().GetName())
	if err := manager.Migrate(db, migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// The broker is optional infrastructure: without it, confirmations are
	// still applied but no announcement is published.
	var publisher reconUsecases.PaymentEventPublisher
	eventBus, err := pubsub.NewAMQPPaymentEventBus(&cfg.AMQP, log)
	if err != nil {
		log.Warnw("AMQP unavailable, payment announcements disabled", "error", err)
	} else {
		defer eventBus.Close()
		publisher = eventBus
	}

	container := httpInterface.NewContainer(db, redisClient, publisher, cfg, log)
	router := httpInterface.NewRouter(container, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:           cfg.Server.GetAddr(),
		Handler:        router.GetEngine(),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("starting HTTP server", "addr", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("HTTP server error", "error", err)
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Infow("server stopped")
	return nil
}
