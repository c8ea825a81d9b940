package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
	mpers "github.com/amirhossein-jamali/finance-tracker/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newQueryService(txRepo *mpers.MockTransactionRepository) portuse.TransactionUseCase {
	return NewService(
		new(mpers.MockUnitOfWork),
		new(mpers.MockUserRepository),
		txRepo,
		new(mcore.MockTimeProvider),
		quietLogger(),
	)
}

func makeTransactions(t *testing.T, userID uuid.UUID, count int) []*entity.Transaction {
	t.Helper()

	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	tp := new(mcore.MockTimeProvider)
	tp.On("Now").Return(now)

	out := make([]*entity.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txn, err := entity.NewTransaction(userID, "expense", "10.00", "food", "", time.Time{}, "", tp)
		assert.NoError(t, err)
		out = append(out, txn)
	}
	return out
}

func TestList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Last partial page", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)
		rows := makeTransactions(t, userID, 5)

		txRepo.On("List", ctx, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.UserID == userID && f.Page == 3 && f.Limit == 10
		})).Return(rows, int64(25), nil)

		result, err := newQueryService(txRepo).List(ctx, userID, portuse.ListTransactionsInput{
			Page:  3,
			Limit: 10,
		})

		assert.NoError(t, err)
		assert.Len(t, result.Transactions, 5)
		assert.Equal(t, 3, result.Pagination.Current)
		assert.Equal(t, 3, result.Pagination.Pages)
		assert.Equal(t, int64(25), result.Pagination.Total)
	})

	t.Run("Defaults apply when page and limit are unset", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)

		txRepo.On("List", ctx, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.Page == 1 && f.Limit == DefaultPageSize
		})).Return([]*entity.Transaction{}, int64(0), nil)

		result, err := newQueryService(txRepo).List(ctx, userID, portuse.ListTransactionsInput{})

		assert.NoError(t, err)
		assert.Empty(t, result.Transactions)
		assert.Equal(t, 1, result.Pagination.Current)
		assert.Equal(t, 0, result.Pagination.Pages)
	})

	t.Run("Limit is capped", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)

		txRepo.On("List", ctx, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.Limit == MaxPageSize
		})).Return([]*entity.Transaction{}, int64(0), nil)

		_, err := newQueryService(txRepo).List(ctx, userID, portuse.ListTransactionsInput{Limit: 5000})

		assert.NoError(t, err)
	})

	t.Run("The all sentinel disables a filter", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)

		txRepo.On("List", ctx, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.Type == "" && f.Category == ""
		})).Return([]*entity.Transaction{}, int64(0), nil)

		_, err := newQueryService(txRepo).List(ctx, userID, portuse.ListTransactionsInput{
			Type:     "all",
			Category: "all",
		})

		assert.NoError(t, err)
	})

	t.Run("Concrete filters pass through", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)
		start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

		txRepo.On("List", ctx, mock.MatchedBy(func(f persistence.TransactionFilter) bool {
			return f.Type == "expense" && f.Category == "food" &&
				f.StartDate != nil && f.StartDate.Equal(start)
		})).Return([]*entity.Transaction{}, int64(0), nil)

		_, err := newQueryService(txRepo).List(ctx, userID, portuse.ListTransactionsInput{
			Type:      "expense",
			Category:  "food",
			StartDate: &start,
		})

		assert.NoError(t, err)
	})
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Combines overview and expense breakdown", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)

		overview := []persistence.TypeTotal{
			{Type: entity.TypeIncome, TotalCents: 1000000, Count: 2},
			{Type: entity.TypeExpense, TotalCents: 200000, Count: 5},
		}
		breakdown := []persistence.CategoryTotal{
			{Category: "food", TotalCents: 150000, Count: 3},
			{Category: "transport", TotalCents: 50000, Count: 2},
		}

		txRepo.On("TotalsByType", ctx, mock.MatchedBy(func(f persistence.StatsFilter) bool {
			return f.UserID == userID
		})).Return(overview, nil)
		txRepo.On("ExpenseTotalsByCategory", ctx, mock.Anything).Return(breakdown, nil)

		result, err := newQueryService(txRepo).Statistics(ctx, userID, portuse.StatisticsInput{})

		assert.NoError(t, err)
		assert.Equal(t, overview, result.Overview)
		assert.Equal(t, breakdown, result.CategoryBreakdown)
	})

	t.Run("Date range reaches both aggregates", func(t *testing.T) {
		txRepo := new(mpers.MockTransactionRepository)
		start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

		matcher := mock.MatchedBy(func(f persistence.StatsFilter) bool {
			return f.StartDate != nil && f.StartDate.Equal(start) &&
				f.EndDate != nil && f.EndDate.Equal(end)
		})
		txRepo.On("TotalsByType", ctx, matcher).Return([]persistence.TypeTotal{}, nil)
		txRepo.On("ExpenseTotalsByCategory", ctx, matcher).Return([]persistence.CategoryTotal{}, nil)

		_, err := newQueryService(txRepo).Statistics(ctx, userID, portuse.StatisticsInput{
			StartDate: &start,
			EndDate:   &end,
		})

		assert.NoError(t, err)
		txRepo.AssertExpectations(t)
	})
}
