package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	domainerrs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
	mpers "github.com/amirhossein-jamali/finance-tracker/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// testUser builds a user entity with the given balance in cents
func testUser(t *testing.T, now time.Time, balanceCents int64) *entity.User {
	t.Helper()

	tp := new(mcore.MockTimeProvider)
	tp.On("Now").Return(now)

	user, err := entity.NewUser("Alice", "alice@example.com", "hash", tp)
	assert.NoError(t, err)
	user.SetBalanceCents(balanceCents)
	return user
}

// quietLogger accepts any log call
func quietLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Income increases the balance", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetUserRepository", txCtx).Return(userRepo)
		uow.On("Commit", txCtx).Return(nil)

		txRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		userRepo.On("AdjustBalance", txCtx, userID, int64(1000000)).
			Return(testUser(t, now, 1000000), nil)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		result, err := svc.Create(ctx, userID, portuse.CreateTransactionInput{
			Type:     "income",
			Amount:   "10000.00",
			Category: "salary",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1000000), result.NewBalance)
		assert.Equal(t, entity.TypeIncome, result.Transaction.Type)
		assert.Equal(t, int64(1000000), result.Transaction.AmountCents)
		uow.AssertExpectations(t)
		userRepo.AssertExpectations(t)
		txRepo.AssertExpectations(t)
	})

	t.Run("Expense decreases the balance", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetUserRepository", txCtx).Return(userRepo)
		uow.On("Commit", txCtx).Return(nil)

		txRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		userRepo.On("AdjustBalance", txCtx, userID, int64(-200000)).
			Return(testUser(t, now, 800000), nil)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		result, err := svc.Create(ctx, userID, portuse.CreateTransactionInput{
			Type:        "expense",
			Amount:      "2000",
			Category:    "food",
			Description: "Groceries",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(800000), result.NewBalance)
		assert.Equal(t, int64(-200000), result.Transaction.SignedCents())
	})

	t.Run("Invalid amount never reaches storage", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		_, err := svc.Create(ctx, userID, portuse.CreateTransactionInput{
			Type:     "income",
			Amount:   "0",
			Category: "salary",
		})

		assert.ErrorIs(t, err, domainerrs.ErrInvalidAmount)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Failed balance write rolls everything back", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetUserRepository", txCtx).Return(userRepo)
		uow.On("Rollback", txCtx).Return(nil)

		txRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		userRepo.On("AdjustBalance", txCtx, userID, int64(1000)).
			Return(nil, domainerrs.ErrUserNotFound)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		_, err := svc.Create(ctx, userID, portuse.CreateTransactionInput{
			Type:     "income",
			Amount:   "10",
			Category: "salary",
		})

		assert.ErrorIs(t, err, domainerrs.ErrUserNotFound)

		var ledgerErr *domainerrs.LedgerError
		assert.True(t, errors.As(err, &ledgerErr))
		assert.Equal(t, int64(1000), ledgerErr.DeltaCents)

		uow.AssertCalled(t, "Rollback", txCtx)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Known reference replays the stored transaction", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		existing, err := entity.NewTransaction(
			userID, "income", "10.00", "salary", "", time.Time{}, "ref-1", tp,
		)
		assert.NoError(t, err)

		txRepo.On("GetByReference", ctx, userID, "ref-1").Return(existing, nil)
		userRepo.On("GetByID", ctx, userID).Return(testUser(t, now, 1000), nil)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		result, err := svc.Create(ctx, userID, portuse.CreateTransactionInput{
			Type:      "income",
			Amount:    "10.00",
			Category:  "salary",
			Reference: "ref-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, result.Transaction.ID)
		assert.Equal(t, int64(1000), result.NewBalance)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestAddMoney(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Records income with the default category", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetUserRepository", txCtx).Return(userRepo)
		uow.On("Commit", txCtx).Return(nil)

		txRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		userRepo.On("AdjustBalance", txCtx, userID, int64(1000000)).
			Return(testUser(t, now, 1000000), nil)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		result, err := svc.AddMoney(ctx, userID, portuse.AddMoneyInput{Amount: "10000.00"})

		assert.NoError(t, err)
		assert.Equal(t, int64(1000000), result.NewBalance)
		assert.Equal(t, entity.TypeIncome, result.Transaction.Type)
		assert.Equal(t, entity.DefaultCategory, result.Transaction.Category)
		assert.Equal(t, "Account top-up", result.Transaction.Description)
	})

	t.Run("Rejects a non-positive amount", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		svc := NewService(uow, new(mpers.MockUserRepository), new(mpers.MockTransactionRepository), new(mcore.MockTimeProvider), quietLogger())

		_, err := svc.AddMoney(ctx, userID, portuse.AddMoneyInput{Amount: "-5"})

		assert.ErrorIs(t, err, domainerrs.ErrInvalidAmount)
		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	newServiceForUpdate := func(existing *entity.Transaction, delta int64, newBalance int64) (portuse.TransactionUseCase, *mpers.MockUnitOfWork) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetUserRepository", txCtx).Return(userRepo)
		uow.On("Commit", txCtx).Return(nil)

		txRepo.On("GetByID", txCtx, existing.ID, userID).Return(existing, nil)
		txRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		userRepo.On("AdjustBalance", txCtx, userID, delta).
			Return(testUser(t, now, newBalance), nil)

		return NewService(uow, userRepo, txRepo, tp, quietLogger()), uow
	}

	t.Run("Reverses the old amount and applies the new one", func(t *testing.T) {
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)
		existing, err := entity.NewTransaction(userID, "expense", "50.00", "food", "", time.Time{}, "", tp)
		assert.NoError(t, err)

		// Old contribution -5000, new contribution -8000
		svc, _ := newServiceForUpdate(existing, int64(-3000), 92000)

		result, err := svc.Update(ctx, userID, existing.ID, portuse.CreateTransactionInput{
			Type:     "expense",
			Amount:   "80.00",
			Category: "food",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(92000), result.NewBalance)
		assert.Equal(t, int64(8000), result.Transaction.AmountCents)
	})

	t.Run("Identical values leave the balance untouched", func(t *testing.T) {
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)
		existing, err := entity.NewTransaction(userID, "income", "100.00", "salary", "Pay", time.Time{}, "", tp)
		assert.NoError(t, err)

		svc, _ := newServiceForUpdate(existing, int64(0), 10000)

		result, err := svc.Update(ctx, userID, existing.ID, portuse.CreateTransactionInput{
			Type:        "income",
			Amount:      "100.00",
			Category:    "salary",
			Description: "Pay",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(10000), result.NewBalance)
	})

	t.Run("Description is trimmed like on create", func(t *testing.T) {
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)
		existing, err := entity.NewTransaction(userID, "expense", "50.00", "food", "", time.Time{}, "", tp)
		assert.NoError(t, err)

		svc, _ := newServiceForUpdate(existing, int64(0), 92000)

		result, err := svc.Update(ctx, userID, existing.ID, portuse.CreateTransactionInput{
			Type:        "expense",
			Amount:      "50.00",
			Category:    "food",
			Description: "  Dinner out  ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Dinner out", result.Transaction.Description)
	})

	t.Run("Missing transaction rolls back", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("Rollback", txCtx).Return(nil)

		missingID := uuid.New()
		txRepo.On("GetByID", txCtx, missingID, userID).Return(nil, domainerrs.ErrTransactionNotFound)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		_, err := svc.Update(ctx, userID, missingID, portuse.CreateTransactionInput{
			Type:     "income",
			Amount:   "10",
			Category: "salary",
		})

		assert.ErrorIs(t, err, domainerrs.ErrTransactionNotFound)
		uow.AssertCalled(t, "Rollback", txCtx)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Reverses the signed amount", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)
		tp.On("Now").Return(now)

		existing, err := entity.NewTransaction(userID, "income", "5000.00", "salary", "", time.Time{}, "", tp)
		assert.NoError(t, err)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("GetUserRepository", txCtx).Return(userRepo)
		uow.On("Commit", txCtx).Return(nil)

		txRepo.On("GetByID", txCtx, existing.ID, userID).Return(existing, nil)
		txRepo.On("Delete", txCtx, existing.ID, userID).Return(nil)
		userRepo.On("AdjustBalance", txCtx, userID, int64(-500000)).
			Return(testUser(t, now, 0), nil)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		err = svc.Delete(ctx, userID, existing.ID)

		assert.NoError(t, err)
		uow.AssertExpectations(t)
		userRepo.AssertExpectations(t)
		txRepo.AssertExpectations(t)
	})

	t.Run("Missing transaction rolls back without touching the balance", func(t *testing.T) {
		uow := new(mpers.MockUnitOfWork)
		userRepo := new(mpers.MockUserRepository)
		txRepo := new(mpers.MockTransactionRepository)
		tp := new(mcore.MockTimeProvider)

		txCtx := context.WithValue(ctx, txKey, "tx")
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("GetTransactionRepository", txCtx).Return(txRepo)
		uow.On("Rollback", txCtx).Return(nil)

		missingID := uuid.New()
		txRepo.On("GetByID", txCtx, missingID, userID).Return(nil, domainerrs.ErrTransactionNotFound)

		svc := NewService(uow, userRepo, txRepo, tp, quietLogger())

		err := svc.Delete(ctx, userID, missingID)

		assert.ErrorIs(t, err, domainerrs.ErrTransactionNotFound)
		userRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})
}
