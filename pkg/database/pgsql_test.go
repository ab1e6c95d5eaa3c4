package database_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/schergr/interiordesign/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := database.Retry(context.Background(), database.RetryPolicy{Attempts: 5, Delay: time.Millisecond}, discardLogger(),
		func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttemptsWithFixedDelay(t *testing.T) {
	calls := 0
	connErr := errors.New("connection refused")
	start := time.Now()

	err := database.Retry(context.Background(), database.RetryPolicy{Attempts: 4, Delay: 10 * time.Millisecond}, discardLogger(),
		func(ctx context.Context) error {
			calls++
			return connErr
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "after 4 attempts")
	assert.Equal(t, 4, calls)
	// three sleeps between four attempts, none after the last one
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRetry_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := database.Retry(ctx, database.RetryPolicy{Attempts: 10, Delay: time.Hour}, discardLogger(),
		func(ctx context.Context) error {
			calls++
			cancel()
			return errors.New("connection refused")
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "")
	assert.Nil(t, pool)
	assert.Error(t, err)
}

func TestNewPgxPoolWithRetry_MalformedURLFailsFast(t *testing.T) {
	start := time.Now()

	pool, err := database.NewPgxPoolWithRetry(context.Background(), "postgres://user:pw@host:notaport/db",
		database.RetryPolicy{Attempts: 5, Delay: time.Hour}, discardLogger())

	assert.Nil(t, pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
	assert.Less(t, time.Since(start), time.Minute)
}

func TestNewPgxPoolWithRetry_EmptyURLFailsFast(t *testing.T) {
	pool, err := database.NewPgxPoolWithRetry(context.Background(), "",
		database.RetryPolicy{Attempts: 5, Delay: time.Hour}, discardLogger())

	assert.Nil(t, pool)
	assert.Error(t, err)
}
