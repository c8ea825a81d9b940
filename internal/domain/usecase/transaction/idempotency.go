package transaction

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// IdempotencyHandler makes create and add-money safe to retry: when a request
// carries a client reference that was already recorded, the stored transaction
// is returned instead of writing a second one
type IdempotencyHandler struct {
	txnRepo persistence.TransactionRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(txnRepo persistence.TransactionRepository) *IdempotencyHandler {
	return &IdempotencyHandler{txnRepo: txnRepo}
}

// Lookup returns the transaction previously recorded for a reference, if any.
// An empty reference never matches.
func (h *IdempotencyHandler) Lookup(ctx context.Context, userID uuid.UUID, reference string) (*entity.Transaction, bool, error) {
	if reference == "" {
		return nil, false, nil
	}

	txn, err := h.txnRepo.GetByReference(ctx, userID, reference)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return txn, true, nil
}
