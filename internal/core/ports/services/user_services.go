package services

import (
	"context"

	"github.com/schergr/interiordesign/internal/core/domain"
	"github.com/schergr/interiordesign/internal/dto"
)

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register hashes the password and stores a new user under the requested role,
	// creating the role when it does not exist yet.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username and password.
	// Returns apperrors.ErrUnauthorized for unknown users and wrong passwords alike.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserAuthenticator is what the auth middleware needs: credential checks for
// Basic auth and user lookups for Bearer token subjects.
type UserAuthenticator interface {
	UserReaderSvc
	UserAuthSvc
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserWriterSvc
	UserReaderSvc
	UserAuthSvc
}
