package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/metrics"
)

// AuthMiddleware authenticates every request with either HTTP Basic credentials,
// checked against the user store, or a Bearer token issued by /login whose
// subject must still exist.
// When enabled is false every request is let through unauthenticated.
func AuthMiddleware(users services.UserAuthenticator, tokens services.TokenSvcFacade, m *metrics.Metrics, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			recordAuth(m, "none", "rejected")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		scheme, credentials, _ := strings.Cut(authHeader, " ")
		switch strings.ToLower(scheme) {
		case "basic":
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				recordAuth(m, "basic", "rejected")
				abortUnauthorized(c, "Malformed basic credentials")
				return
			}
			user, err := users.AuthenticateUser(c.Request.Context(), username, password)
			if err != nil {
				if !errors.Is(err, apperrors.ErrUnauthorized) {
					logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
					return
				}
				logger.Warn("Invalid basic credentials", slog.String("username", username))
				recordAuth(m, "basic", "rejected")
				abortUnauthorized(c, "Invalid credentials")
				return
			}
			recordAuth(m, "basic", "accepted")
			withUser(c, user.ID, "basic")

		case "bearer":
			userID, err := tokens.ParseAccessToken(c.Request.Context(), strings.TrimSpace(credentials))
			if err != nil {
				logger.Warn("Invalid token", slog.String("error", err.Error()))
				recordAuth(m, "bearer", "rejected")
				abortUnauthorized(c, apperrors.Message(err, "Invalid token"))
				return
			}
			if _, err := users.GetUserByID(c.Request.Context(), userID); err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					logger.Error("Failed to load token subject", slog.String("error", err.Error()))
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
					return
				}
				logger.Warn("Token subject no longer exists", slog.Int64("user_id", userID))
				recordAuth(m, "bearer", "rejected")
				abortUnauthorized(c, "Invalid token subject")
				return
			}
			recordAuth(m, "bearer", "accepted")
			withUser(c, userID, "bearer")

		default:
			logger.Warn("Unsupported authorization scheme", slog.String("scheme", scheme))
			recordAuth(m, "unknown", "rejected")
			abortUnauthorized(c, "Authorization header must be Basic or Bearer")
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Basic realm="interiordesign"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func recordAuth(m *metrics.Metrics, scheme, outcome string) {
	if m == nil {
		return
	}
	m.AuthAttemptsTotal.WithLabelValues(scheme, outcome).Inc()
}
