package transaction

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Pagination defaults and bounds
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// List returns one page of the user's transactions sorted by occurrence date
// descending, plus pagination metadata. Read-only; safe to retry and to run
// concurrently with mutations.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input usecase.ListTransactionsInput) (*usecase.ListTransactionsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filter := persistence.TransactionFilter{
		UserID:    userID,
		Type:      normalizeFilter(input.Type),
		Category:  normalizeFilter(input.Category),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Page:      page,
		Limit:     limit,
	}

	transactions, total, err := s.txnRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ListTransactionsResult{
		Transactions: transactions,
		Pagination: usecase.Pagination{
			Current: page,
			Pages:   pages,
			Total:   total,
		},
	}, nil
}

// Statistics returns totals grouped by transaction type plus expense totals
// grouped by category. Only the date range applies; list filters are ignored
// by design.
func (s *Service) Statistics(ctx context.Context, userID uuid.UUID, input usecase.StatisticsInput) (*usecase.StatisticsResult, error) {
	filter := persistence.StatsFilter{
		UserID:    userID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	overview, err := s.txnRepo.TotalsByType(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to aggregate totals by type", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	breakdown, err := s.txnRepo.ExpenseTotalsByCategory(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to aggregate expense categories", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.StatisticsResult{
		Overview:          overview,
		CategoryBreakdown: breakdown,
	}, nil
}

// normalizeFilter maps the "all" sentinel to an unset filter
func normalizeFilter(value string) string {
	if value == entity.FilterAll {
		return ""
	}
	return value
}
