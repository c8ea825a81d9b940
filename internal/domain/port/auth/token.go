package auth

import (
	"github.com/google/uuid"
)

// Claims is the identity a bearer token carries
type Claims struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// TokenManager signs and verifies bearer credentials
type TokenManager interface {
	// Generate issues a signed token for the given claims
	Generate(claims Claims) (string, error)

	// Verify parses and validates a token and returns its claims
	//
	// Possible errors:
	// - ErrTokenExpired: if the token is past its expiry
	// - ErrInvalidToken: for any other parse or signature failure
	Verify(token string) (*Claims, error)
}
