package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/google/uuid"
)

// MaxDescriptionLength bounds the free-text description
const MaxDescriptionLength = 200

// Transaction represents a single recorded income or expense event owned by
// one user. The amount is always stored unsigned; the sign is derived from
// Type at every balance-touching step.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	AmountCents int64
	Category    string
	Description string
	Date        time.Time // When the transaction occurred, defaults to creation time
	Reference   string    // Optional client-supplied key for idempotent retries
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a transaction after validating type, amount,
// category and description. A zero occurredAt defaults to the current time.
func NewTransaction(
	userID uuid.UUID,
	transactionType string,
	amount string,
	category string,
	description string,
	occurredAt time.Time,
	reference string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUserNotFound
	}
	if !IsValidType(transactionType) {
		return nil, errs.ErrInvalidType
	}

	amountCents, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	typ := TransactionType(transactionType)
	if !IsValidCategory(typ, category) {
		return nil, errs.NewCategoryError(transactionType, category)
	}

	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return nil, errs.ErrDescriptionTooLong
	}

	now := timeProvider.Now()
	if occurredAt.IsZero() {
		occurredAt = now
	}

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        typ,
		AmountCents: amountCents,
		Category:    category,
		Description: description,
		Date:        occurredAt,
		Reference:   reference,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Amount returns the unsigned amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return FormatCents(t.AmountCents)
}

// SignedCents returns the balance contribution of this transaction:
// positive for income, negative for expense
func (t *Transaction) SignedCents() int64 {
	return t.Type.Signed(t.AmountCents)
}

// IsCredit returns true if this transaction increases the user's balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeIncome
}
