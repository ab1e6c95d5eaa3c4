package dto

import "time"

// RegisterRequest defines the data needed to create a user account.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,notblank"`
	Password string  `json:"password" binding:"required,notblank"`
	Role     *string `json:"role"`
}

// LoginRequest defines the credentials exchanged for a token.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries a signed bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
