package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/google/uuid"
)

// Name and password bounds enforced at registration
const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 6
)

// User represents a registered account with a cached running balance
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	balanceCents int64 // Sum of signed transaction amounts, denormalized for fast reads (private)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active user with a zero balance.
// The password must already be hashed; plaintext never reaches the entity.
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return nil, errs.ErrInvalidName
	}

	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		balanceCents: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NormalizeEmail lowercases and validates an email address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.ErrInvalidEmail
	}
	return email, nil
}

// BalanceCents returns the cached balance in cents
func (u *User) BalanceCents() int64 {
	return u.balanceCents
}

// Balance returns the cached balance as a string with 2 decimal places
func (u *User) Balance() string {
	return FormatCents(u.balanceCents)
}

// SetBalanceCents overwrites the cached balance (for repositories rebuilding
// the entity from storage)
func (u *User) SetBalanceCents(cents int64) {
	u.balanceCents = cents
}

// ApplyDelta adjusts the cached balance by a signed amount in cents
func (u *User) ApplyDelta(deltaCents int64, timeProvider coreport.TimeProvider) {
	u.balanceCents += deltaCents
	u.UpdatedAt = timeProvider.Now()
}
