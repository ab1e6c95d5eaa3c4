package services

import (
	"context"
	"time"

	"github.com/schergr/interiordesign/internal/core/domain"
)

// TokenSvcFacade issues and verifies bearer tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed token for the user and returns its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ParseAccessToken validates a token and returns the user id it was issued to.
	ParseAccessToken(ctx context.Context, token string) (int64, error)
}

// TaskSyncer pushes a task to an external to-do service.
// Implementations never return an error; the outcome is carried by the result.
type TaskSyncer interface {
	Sync(ctx context.Context, name string, due *time.Time) domain.TaskSyncResult
}
