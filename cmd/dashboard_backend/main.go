package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/product_transactions/internal/adapters/amqp"
	"github.com/SscSPs/product_transactions/internal/adapters/upstream"
	"github.com/SscSPs/product_transactions/internal/core/ports"
	portsrepo "github.com/SscSPs/product_transactions/internal/core/ports/repositories"
	"github.com/SscSPs/product_transactions/internal/core/services"
	"github.com/SscSPs/product_transactions/internal/handlers"
	"github.com/SscSPs/product_transactions/internal/middleware"
	"github.com/SscSPs/product_transactions/internal/platform/config"
	"github.com/SscSPs/product_transactions/internal/repositories/database/pgsql"
	"github.com/SscSPs/product_transactions/internal/repositories/database/sqlite"
	"github.com/SscSPs/product_transactions/internal/repositories/memory"
	"github.com/SscSPs/product_transactions/internal/utils"
	"github.com/SscSPs/product_transactions/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Product Transactions Dashboard API
// @version 1.0
// @description Seeds a product transaction dataset and serves monthly listings, statistics and chart data.

// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := newRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			logger.Error("Error closing record store", slog.String("error", cerr.Error()))
		}
	}()

	publisher, closePublisher := newSeedEventPublisher(cfg, logger)
	defer closePublisher()

	source := upstream.NewHTTPSource(cfg.SeedSourceURL, cfg.SeedFetchTimeout)
	serviceContainer := services.NewServiceContainer(repos, source, publisher)

	if cfg.SeedOnStartup {
		seedCtx := middleware.WithLogger(ctx, logger.With(slog.String("task", "startup_seed")))
		if seeded, err := serviceContainer.Seed.SeedIfEmpty(seedCtx); err != nil {
			logger.Error("Startup seed failed", slog.String("error", err.Error()))
		} else if seeded {
			logger.Info("Startup seed completed")
		}
	}

	seedLimiter, err := middleware.NewMemoryRateLimiter(cfg.SeedRateLimit)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, seedLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, err
		}
		return pgsql.NewRepositoryProvider(dbPool), nil
	case config.BackendSQLite:
		provider, err := sqlite.NewRepositoryProvider(cfg.SQLiteDBPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLiteDBPath))
		return provider, nil
	default:
		logger.Info("Using in-memory store")
		return memory.NewRepositoryProvider(), nil
	}
}

// newSeedEventPublisher connects to AMQP when configured. Connection failure
// only disables seed events.
func newSeedEventPublisher(cfg *config.Config, logger *slog.Logger) (ports.SeedEventPublisher, func()) {
	if cfg.AMQPURL == "" {
		return ports.NoopSeedEventPublisher{}, func() {}
	}
	publisher, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
	if err != nil {
		logger.Warn("AMQP unavailable, seed events disabled", slog.String("error", err.Error()))
		return ports.NoopSeedEventPublisher{}, func() {}
	}
	logger.Info("AMQP seed event publisher ready", slog.String("exchange", cfg.AMQPExchange))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}
}
