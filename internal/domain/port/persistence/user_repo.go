package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the methods needed to manage user records and their
// cached balance
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this ID exists
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Used by login and by registration's duplicate check.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this email exists
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user
	//
	// Possible errors:
	// - ErrEmailTaken: if a user with the same email already exists
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// AdjustBalance applies a signed delta to the user's cached balance as a
	// single atomic increment (balance = balance + delta issued as one store
	// operation, never read-modify-write) and returns the updated user.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with this ID exists
	// - ErrDatabaseConnection: if the database cannot be reached
	AdjustBalance(ctx context.Context, userID uuid.UUID, deltaCents int64) (*entity.User, error)
}
