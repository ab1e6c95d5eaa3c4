package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RetryPolicy bounds how often and how fast a connection is re-attempted.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// NewPgxPool creates a new PostgreSQL connection pool and verifies it with a ping.
func NewPgxPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := parsePoolConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	return connectPool(ctx, config)
}

// NewPgxPoolWithRetry keeps connecting until the database answers or the policy
// is exhausted. A URL that cannot be parsed fails at once.
func NewPgxPoolWithRetry(ctx context.Context, databaseURL string, policy RetryPolicy, logger *slog.Logger) (*pgxpool.Pool, error) {
	config, err := parsePoolConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	var pool *pgxpool.Pool
	err = Retry(ctx, policy, logger, func(ctx context.Context) error {
		p, err := connectPool(ctx, config)
		if err != nil {
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection pool established.")
	return pool, nil
}

func parsePoolConfig(databaseURL string) (*pgxpool.Config, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	config.ConnConfig.ConnectTimeout = 5 * time.Second
	return config, nil
}

func connectPool(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Retry runs fn up to policy.Attempts times, sleeping policy.Delay between failures.
func Retry(ctx context.Context, policy RetryPolicy, logger *slog.Logger, fn func(ctx context.Context) error) error {
	attempts := policy.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		logger.Warn("Database not ready",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.Duration("retry_in", policy.Delay),
			slog.String("error", lastErr.Error()),
		)
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up waiting for database: %w", ctx.Err())
		case <-time.After(policy.Delay):
		}
	}
	return fmt.Errorf("failed to initialize database after %d attempts: %w", attempts, lastErr)
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool != nil {
		pool.Close()
		logger.Info("PostgreSQL connection pool closed.")
	}
}
