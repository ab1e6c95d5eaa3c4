package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in the request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	authMethod   = "authMethod"
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger when the logging middleware did not run.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(int64)
	return userID, ok
}

// withUser stores the authenticated user in the request context and enriches its logger.
func withUser(c *gin.Context, userID int64, method string) {
	ctx := c.Request.Context()
	logger := GetLoggerFromCtx(ctx).With(slog.Int64("user_id", userID))
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = WithLogger(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(authMethod, method)
}
