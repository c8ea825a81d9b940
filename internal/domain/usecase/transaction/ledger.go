package transaction

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// defaultTopUpDescription is used when an add-money request carries no
// description of its own
const defaultTopUpDescription = "Account top-up"

// AddMoney records an income transaction with the default category and
// atomically increases the balance
func (s *Service) AddMoney(ctx context.Context, userID uuid.UUID, input usecase.AddMoneyInput) (*usecase.LedgerResult, error) {
	if err := s.validator.ValidateAddMoney(input); err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = defaultTopUpDescription
	}

	return s.Create(ctx, userID, usecase.CreateTransactionInput{
		Type:        string(entity.TypeIncome),
		Amount:      input.Amount,
		Category:    entity.DefaultCategory,
		Description: description,
		Reference:   input.Reference,
	})
}

// Create persists a transaction and adjusts the owner's cached balance by its
// signed amount. Both writes run inside one storage transaction; if either
// fails, neither is kept.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateTransactionInput) (*usecase.LedgerResult, error) {
	if err := s.validator.ValidateCreate(input); err != nil {
		return nil, err
	}

	// Retried request with a known reference: replay the stored result
	if existing, found, err := s.idempotency.Lookup(ctx, userID, input.Reference); err != nil {
		return nil, err
	} else if found {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Duplicate reference, replaying stored transaction", map[string]any{
			"user_id":        userID.String(),
			"transaction_id": existing.ID.String(),
			"reference":      input.Reference,
		})
		return &usecase.LedgerResult{Transaction: existing, NewBalance: user.BalanceCents()}, nil
	}

	txn, err := entity.NewTransaction(
		userID,
		input.Type,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
		input.Reference,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	var result *usecase.LedgerResult
	err = s.withUnitOfWork(ctx, func(txCtx context.Context) error {
		if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}

		user, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, txn.SignedCents())
		if err != nil {
			return errs.NewLedgerError(userID.String(), txn.SignedCents(), err)
		}

		result = &usecase.LedgerResult{Transaction: txn, NewBalance: user.BalanceCents()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"user_id":        userID.String(),
		"transaction_id": txn.ID.String(),
		"type":           string(txn.Type),
		"amount":         txn.Amount(),
		"category":       txn.Category,
		"new_balance":    entity.FormatCents(result.NewBalance),
	})

	return result, nil
}

// Update reverses the pre-update record's effect on the balance, applies the
// new amount and type, and persists the field changes as one unit
func (s *Service) Update(ctx context.Context, userID, transactionID uuid.UUID, input usecase.CreateTransactionInput) (*usecase.LedgerResult, error) {
	if err := s.validator.ValidateCreate(input); err != nil {
		return nil, err
	}

	amountCents, err := entity.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	var result *usecase.LedgerResult
	err = s.withUnitOfWork(ctx, func(txCtx context.Context) error {
		txnRepo := s.uow.GetTransactionRepository(txCtx)

		// The reversal must come from the pre-update record, so load before
		// touching anything
		txn, err := txnRepo.GetByID(txCtx, transactionID, userID)
		if err != nil {
			return err
		}

		oldSigned := txn.SignedCents()

		txn.Type = entity.TransactionType(input.Type)
		txn.AmountCents = amountCents
		txn.Category = input.Category
		// Same normalization the create path applies
		txn.Description = strings.TrimSpace(input.Description)
		if !input.Date.IsZero() {
			txn.Date = input.Date
		}
		txn.UpdatedAt = s.timeProvider.Now()

		if err := txnRepo.Update(txCtx, txn); err != nil {
			return err
		}

		// One combined delta: -old +new. Identical values cancel to zero and
		// leave the balance untouched.
		delta := txn.SignedCents() - oldSigned
		user, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, delta)
		if err != nil {
			return errs.NewLedgerError(userID.String(), delta, err)
		}

		result = &usecase.LedgerResult{Transaction: txn, NewBalance: user.BalanceCents()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"user_id":        userID.String(),
		"transaction_id": transactionID.String(),
		"new_balance":    entity.FormatCents(result.NewBalance),
	})

	return result, nil
}

// Delete reverses the transaction's effect on the balance and removes the
// record, symmetric to the update reversal step
func (s *Service) Delete(ctx context.Context, userID, transactionID uuid.UUID) error {
	err := s.withUnitOfWork(ctx, func(txCtx context.Context) error {
		txnRepo := s.uow.GetTransactionRepository(txCtx)

		txn, err := txnRepo.GetByID(txCtx, transactionID, userID)
		if err != nil {
			return err
		}

		if err := txnRepo.Delete(txCtx, transactionID, userID); err != nil {
			return err
		}

		reversal := -txn.SignedCents()
		if _, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, reversal); err != nil {
			return errs.NewLedgerError(userID.String(), reversal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"user_id":        userID.String(),
		"transaction_id": transactionID.String(),
	})

	return nil
}

// withUnitOfWork runs fn inside one storage transaction and commits only if
// it succeeds. This is what keeps the transaction record and the cached
// balance from ever diverging: a failed balance write rolls the record back
// rather than leaving an orphan.
func (s *Service) withUnitOfWork(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}
