package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool defaults, each overridable through the matching pool_* URL parameter.
const (
	pgMaxConns          = 10
	pgMinConns          = 1
	pgMaxConnIdleTime   = 5 * time.Minute
	pgHealthCheckPeriod = time.Minute
	pgConnectTimeout    = 10 * time.Second
)

// NewPgxPool opens a pgx pool for databaseURL and pings it before returning.
func NewPgxPool(ctx context.Context, logger *slog.Logger, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	applyPoolDefaults(poolCfg, databaseURL)

	connectCtx, cancel := context.WithTimeout(ctx, pgConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to PostgreSQL",
		slog.String("host", poolCfg.ConnConfig.Host),
		slog.String("database", poolCfg.ConnConfig.Database),
		slog.Int("max_conns", int(poolCfg.MaxConns)),
	)
	return pool, nil
}

func applyPoolDefaults(poolCfg *pgxpool.Config, databaseURL string) {
	if !hasParam(databaseURL, "pool_max_conns") {
		poolCfg.MaxConns = pgMaxConns
	}
	if !hasParam(databaseURL, "pool_min_conns") {
		poolCfg.MinConns = pgMinConns
	}
	if !hasParam(databaseURL, "pool_max_conn_idle_time") {
		poolCfg.MaxConnIdleTime = pgMaxConnIdleTime
	}
	if !hasParam(databaseURL, "pool_health_check_period") {
		poolCfg.HealthCheckPeriod = pgHealthCheckPeriod
	}
}

// hasParam reports whether a URL or keyword/value DSN sets name.
func hasParam(dsn, name string) bool {
	return strings.Contains(dsn, name+"=")
}

// ClosePgxPool closes pool and logs it.
func ClosePgxPool(logger *slog.Logger, pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	logger.Info("PostgreSQL connection pool closed")
}
