package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/google/uuid"
)

// AuthResult is returned by register and login: the sanitized user plus a
// signed bearer token
type AuthResult struct {
	User  *entity.User
	Token string
}

// AuthUseCase handles registration, login and token-based identity
type AuthUseCase interface {
	// Register creates a new account and issues a token
	//
	// Possible errors:
	// - ErrInvalidName, ErrInvalidEmail, ErrWeakPassword: malformed input
	// - ErrEmailTaken: the email is already registered
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Login verifies credentials and issues a token
	//
	// Possible errors:
	// - ErrInvalidCredentials: unknown email or wrong password
	// - ErrAccountDisabled: the account is inactive
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// GetProfile returns the user for an authenticated identity
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Authenticate resolves a bearer token to an active user.
	// Used by the HTTP auth middleware on every protected route.
	//
	// Possible errors:
	// - ErrInvalidToken, ErrTokenExpired: token failures
	// - ErrAccountDisabled: the referenced account is inactive
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
