package services

import (
	"context"
	"strconv"
	"time"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/platform/config"
	"github.com/schergr/interiordesign/internal/utils"
)

// tokenService issues and verifies HS256 access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(strconv.FormatInt(user.ID, 10), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// ParseAccessToken validates the token and returns the user id in its subject.
func (s *tokenService) ParseAccessToken(ctx context.Context, token string) (int64, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret, s.cfg.JWTIssuer)
	if err != nil {
		return 0, apperrors.NewAppError(401, "Invalid token", apperrors.ErrUnauthorized)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, apperrors.NewAppError(401, "Invalid token subject", apperrors.ErrUnauthorized)
	}
	return userID, nil
}
