package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	goose "github.com/pressly/goose/v3"

	"github.com/abhay963/Nagar-Sahayata-Portal/migrations"
)

const (
	connectTimeout  = 5 * time.Second
	pingAttempts    = 10
	pingRetryDelay  = 500 * time.Millisecond
	healthCheckTick = 30 * time.Second
)

// Connect opens a pool and waits until the database answers a ping.
func Connect(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.HealthCheckPeriod = healthCheckTick
	poolCfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}

	err = waitReady(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func waitReady(ctx context.Context, pool *pgxpool.Pool) error {
	var err error

	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}

		slog.WarnContext(ctx, "postgres not ready", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingRetryDelay):
		}
	}

	return fmt.Errorf("postgres ping: %w", err)
}

// UpMigrations applies the embedded migrations through the given pool.
func UpMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		slog.InfoContext(ctx, "migration applied", "source", res.Source.Path, "duration", res.Duration)
	}

	return nil
}
