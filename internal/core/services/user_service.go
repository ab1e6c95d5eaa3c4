package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/schergr/interiordesign/internal/apperrors"
	"github.com/schergr/interiordesign/internal/core/domain"
	portsrepo "github.com/schergr/interiordesign/internal/core/ports/repositories"
	portssvc "github.com/schergr/interiordesign/internal/core/ports/services"
	"github.com/schergr/interiordesign/internal/dto"
	"github.com/schergr/interiordesign/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements portssvc.UserSvcFacade
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a user under req.Role, or the default role when none is given.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.Validationf("Invalid input")
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, apperrors.Validationf("Invalid input: password must be at most %d bytes", utils.MaxPasswordBytes)
	}

	role := domain.DefaultRoleName
	if req.Role != nil && strings.TrimSpace(*req.Role) != "" {
		role = strings.TrimSpace(*req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := &domain.User{Username: username, PasswordHash: hash}
	if _, err := s.userRepo.CreateUserWithRole(ctx, user, role); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicatef("User already exists")
		}
		s.LogError(ctx, err, "Failed to register user", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.ID), slog.String("role", role))
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.Int64("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser verifies a username/password pair against the stored bcrypt hash.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
