package utils_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/schergr/interiordesign/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, utils.CheckPasswordHash("s3cret", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("42", "secret", time.Minute, "interiordesign")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "interiordesign")
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWT_RejectsWrongSecretAndIssuer(t *testing.T) {
	token, err := utils.GenerateJWT("42", "secret", time.Minute, "interiordesign")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other", "interiordesign")
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)
}

func TestJWT_RejectsExpired(t *testing.T) {
	token, err := utils.GenerateJWT("42", "secret", -time.Minute, "interiordesign")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret", "interiordesign")
	assert.Error(t, err)
}

func TestPosthogClientWrapper_DisabledWithoutKey(t *testing.T) {
	w := utils.InitializePosthogClient("", "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.False(t, w.IsInitialized())

	// inert wrapper must not panic
	w.Enqueue("user-1", "api_request", map[string]any{"path": "/vendors"})
	w.Close()
}
