package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionFilter describes the constraints for listing transactions.
// Zero values (and the literal "all") impose no constraint.
type TransactionFilter struct {
	UserID    uuid.UUID
	Type      string
	Category  string
	StartDate *time.Time // inclusive
	EndDate   *time.Time // inclusive
	Page      int        // 1-based
	Limit     int
}

// StatsFilter describes the constraints for aggregate statistics.
// Statistics apply only the date range; list filters are ignored by design.
type StatsFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// TypeTotal is the aggregate for a single transaction type
type TypeTotal struct {
	Type       entity.TransactionType
	TotalCents int64
	Count      int64
}

// CategoryTotal is the aggregate for a single expense category
type CategoryTotal struct {
	Category   string
	TotalCents int64
	Count      int64
}

// TransactionRepository defines the methods needed to manage transaction
// records and answer filtered queries over them
type TransactionRepository interface {
	// Create persists a new transaction
	//
	// Possible errors:
	// - ErrDuplicateReference: if the client reference was already recorded
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction scoped to its owner. A transaction that
	// exists but belongs to another user is reported as not found.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if absent or owned by another user
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// GetByReference retrieves the transaction previously recorded for a
	// client reference, for idempotent retries
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction carries this reference
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByReference(ctx context.Context, userID uuid.UUID, reference string) (*entity.Transaction, error)

	// Update persists changed fields of an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: if the record vanished since it was loaded
	// - ErrDatabaseConnection: if the database cannot be reached
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction scoped to its owner
	//
	// Possible errors:
	// - ErrTransactionNotFound: if absent or owned by another user
	// - ErrDatabaseConnection: if the database cannot be reached
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// List returns one page of matching transactions sorted by occurrence
	// date descending (ties broken by insertion order, newest first) plus the
	// total matching count
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, int64, error)

	// TotalsByType returns sum and count grouped by transaction type
	TotalsByType(ctx context.Context, filter StatsFilter) ([]TypeTotal, error)

	// ExpenseTotalsByCategory returns expense sum and count grouped by
	// category, sorted by total descending
	ExpenseTotalsByCategory(ctx context.Context, filter StatsFilter) ([]CategoryTotal, error)
}
