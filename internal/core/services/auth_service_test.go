package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/core/services"
	"github.com/schergr/interiordesign/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "interiordesign-test"}
}

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTokenService(testTokenConfig())

	token, expiresAt, err := svc.GenerateAccessToken(ctx, &domain.User{ID: 42, Username: "steph"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	userID, err := svc.ParseAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenService_RejectsForeignToken(t *testing.T) {
	ctx := context.Background()
	other := testTokenConfig()
	other.JWTSecret = "another-secret"

	token, _, err := services.NewTokenService(other).GenerateAccessToken(ctx, &domain.User{ID: 1})
	require.NoError(t, err)

	_, err = services.NewTokenService(testTokenConfig()).ParseAccessToken(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = services.NewTokenService(testTokenConfig()).ParseAccessToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
