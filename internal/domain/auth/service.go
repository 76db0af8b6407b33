package auth

import (
	"context"
)

// AuthService defines the minimal token issuer backing the API middleware.
type AuthService interface {
	// Login verifies credentials and issues access and refresh tokens
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
