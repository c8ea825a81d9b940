package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// CreateTransactionInput carries the fields for creating or updating a
// transaction. Amount is the decimal string from the request; Date is
// optional and defaults to the current time on create.
type CreateTransactionInput struct {
	Type        string
	Amount      string
	Category    string
	Description string
	Date        time.Time
	Reference   string
}

// AddMoneyInput carries the fields of an account top-up
type AddMoneyInput struct {
	Amount      string
	Description string
	Reference   string
}

// LedgerResult is returned by balance-touching operations
type LedgerResult struct {
	Transaction *entity.Transaction
	NewBalance  int64 // cents
}

// ListTransactionsInput carries the filters and pagination of a list request
type ListTransactionsInput struct {
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// Pagination is the metadata returned alongside a page of transactions
type Pagination struct {
	Current int
	Pages   int
	Total   int64
}

// ListTransactionsResult is one page of transactions plus pagination metadata
type ListTransactionsResult struct {
	Transactions []*entity.Transaction
	Pagination   Pagination
}

// StatisticsInput carries the optional date range of a statistics request
type StatisticsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// StatisticsResult groups totals by type and expense totals by category
type StatisticsResult struct {
	Overview          []persistence.TypeTotal
	CategoryBreakdown []persistence.CategoryTotal
}

// TransactionUseCase is the combined surface of the balance ledger updater
// (mutations) and the transaction query engine (reads)
type TransactionUseCase interface {
	// AddMoney records an income transaction with the default category and
	// atomically increases the balance
	AddMoney(ctx context.Context, userID uuid.UUID, input AddMoneyInput) (*LedgerResult, error)

	// Create persists a transaction and adjusts the balance by its signed
	// amount; both writes commit or roll back together
	Create(ctx context.Context, userID uuid.UUID, input CreateTransactionInput) (*LedgerResult, error)

	// Update reverses the pre-update record's effect on the balance, applies
	// the new one, and persists the field changes
	Update(ctx context.Context, userID, transactionID uuid.UUID, input CreateTransactionInput) (*LedgerResult, error)

	// Delete reverses the transaction's effect on the balance and removes it
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error

	// List returns one page of the user's transactions under the given filters
	List(ctx context.Context, userID uuid.UUID, input ListTransactionsInput) (*ListTransactionsResult, error)

	// Statistics returns grouped totals for the user under an optional date range
	Statistics(ctx context.Context, userID uuid.UUID, input StatisticsInput) (*StatisticsResult, error)
}
