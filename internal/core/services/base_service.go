package services

import (
	"context"
	"log/slog"

	"github.com/schergr/interiordesign/internal/middleware"
)

// BaseService gives every service the request-scoped logger.
type BaseService struct{}

// GetLogger returns the request logger stored in ctx, or the process default.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	return slog.Default()
}

// LogError logs err at ERROR level.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logErr(ctx, slog.LevelError, err, msg, keyvals)
}

// LogWarn logs a recoverable failure at WARN level.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logErr(ctx, slog.LevelWarn, err, msg, keyvals)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

func (s *BaseService) logErr(ctx context.Context, level slog.Level, err error, msg string, keyvals []any) {
	args := append([]any{slog.String("error", err.Error())}, keyvals...)
	s.GetLogger(ctx).Log(ctx, level, msg, args...)
}
