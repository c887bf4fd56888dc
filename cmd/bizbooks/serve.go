package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/bizbooks/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks/internal/core/services"
	"github.com/SscSPs/bizbooks/internal/handlers"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/SscSPs/bizbooks/internal/platform/config"
	"github.com/SscSPs/bizbooks/internal/repositories/database/boltdb"
	"github.com/SscSPs/bizbooks/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizbooks/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP API",
		Long:  `serve opens the configured storage, applies pending migrations on PostgreSQL and serves the API until interrupted.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().Bool("skip-migrations", false, "do not apply pending migrations on start")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	skipMigrations, err := cmd.Flags().GetBool("skip-migrations")
	if err != nil {
		return err
	}
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, txm, closeStore, err := openStore(ctx, cfg, logger, skipMigrations)
	if err != nil {
		return err
	}
	defer closeStore()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Error closing redis client", slog.String("error", err.Error()))
			}
		}()
		logger.Info("Rate limit counters stored in redis.")
	}
	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		return err
	}

	container := services.NewServiceContainer(repos, txm, services.WithBalanceWorkers(cfg.BalanceWorkers))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, rateLimiter); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// corsConfig allows the given origins, or every origin when none is configured.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// openStore opens the configured storage driver and returns its repositories,
// its transaction manager and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, skipMigrations bool) (portsrepo.RepositoryProvider, portsrepo.TransactionManager, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverBolt:
		db, err := database.OpenBolt(cfg.BoltPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		if err := boltdb.EnsureBuckets(db); err != nil {
			database.CloseBolt(db)
			return portsrepo.RepositoryProvider{}, nil, nil, err
		}
		return boltdb.NewRepositoryProvider(db), boltdb.NewTransactionManager(db), func() { database.CloseBolt(db) }, nil

	default:
		if !skipMigrations {
			logger.Info("Running database migrations...")
			if err := database.Migrate(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
				return portsrepo.RepositoryProvider{}, nil, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, logger, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), pgsql.NewTransactionManager(pool), func() { database.ClosePgxPool(logger, pool) }, nil
	}
}
