package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	var reference *string
	if txn.Reference != "" {
		ref := txn.Reference
		reference = &ref
	}

	return model.Transaction{
		ID:          txn.ID,
		UserID:      txn.UserID,
		Type:        string(txn.Type),
		AmountCents: txn.AmountCents,
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date,
		Reference:   reference,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	reference := ""
	if txnModel.Reference != nil {
		reference = *txnModel.Reference
	}

	return &entity.Transaction{
		ID:          txnModel.ID,
		UserID:      txnModel.UserID,
		Type:        entity.TransactionType(txnModel.Type),
		AmountCents: txnModel.AmountCents,
		Category:    txnModel.Category,
		Description: txnModel.Description,
		Date:        txnModel.Date,
		Reference:   reference,
		CreatedAt:   txnModel.CreatedAt,
		UpdatedAt:   txnModel.UpdatedAt,
	}
}

// Create persists a new transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction reference", map[string]any{
				"user_id":   txn.UserID.String(),
				"reference": txn.Reference,
			})
			return errs.ErrDuplicateReference
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": txn.ID.String(),
			"user_id":        txn.UserID.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// GetByID retrieves a transaction scoped to its owner. A record owned by
// another user is indistinguishable from a missing one.
func (r *TransactionRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id.String(),
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}

// GetByReference retrieves the transaction recorded for a client reference
func (r *TransactionRepository) GetByReference(ctx context.Context, userID uuid.UUID, reference string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND reference = ?", userID, reference).
		First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction by reference", map[string]any{
			"user_id":   userID.String(),
			"reference": reference,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}

// Update persists the mutable fields of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", txn.ID, txn.UserID).
		Updates(map[string]interface{}{
			"type":         string(txn.Type),
			"amount_cents": txn.AmountCents,
			"category":     txn.Category,
			"description":  txn.Description,
			"date":         txn.Date,
			"updated_at":   txn.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": txn.ID.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction scoped to its owner
func (r *TransactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Transaction{})

	if result.Error != nil {
		r.logger.Error("Failed to delete transaction", map[string]any{
			"transaction_id": id.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// List returns one page of matching transactions plus the total count.
// Sorted by occurrence date descending with insertion order (newest first)
// breaking ties; the id column is a final tiebreak to keep paging stable.
func (r *TransactionRepository) List(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := r.filteredQuery(ctx, filter.UserID, filter.StartDate, filter.EndDate)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var txnModels []model.Transaction
	err := query.
		Order("date DESC, created_at DESC, id DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		transactions = append(transactions, r.modelToEntity(&txnModels[i]))
	}

	return transactions, total, nil
}

// typeTotalRow and categoryTotalRow receive the aggregate scans
type typeTotalRow struct {
	Type       string
	TotalCents int64
	Count      int64
}

type categoryTotalRow struct {
	Category   string
	TotalCents int64
	Count      int64
}

// TotalsByType returns sum and count grouped by transaction type
func (r *TransactionRepository) TotalsByType(ctx context.Context, filter persistence.StatsFilter) ([]persistence.TypeTotal, error) {
	var rows []typeTotalRow
	err := r.filteredQuery(ctx, filter.UserID, filter.StartDate, filter.EndDate).
		Select("type, SUM(amount_cents) AS total_cents, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	totals := make([]persistence.TypeTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, persistence.TypeTotal{
			Type:       entity.TransactionType(row.Type),
			TotalCents: row.TotalCents,
			Count:      row.Count,
		})
	}

	return totals, nil
}

// ExpenseTotalsByCategory returns expense sum and count grouped by category,
// largest total first
func (r *TransactionRepository) ExpenseTotalsByCategory(ctx context.Context, filter persistence.StatsFilter) ([]persistence.CategoryTotal, error) {
	var rows []categoryTotalRow
	err := r.filteredQuery(ctx, filter.UserID, filter.StartDate, filter.EndDate).
		Where("type = ?", string(entity.TypeExpense)).
		Select("category, SUM(amount_cents) AS total_cents, COUNT(*) AS count").
		Group("category").
		Order("total_cents DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	totals := make([]persistence.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, persistence.CategoryTotal{
			Category:   row.Category,
			TotalCents: row.TotalCents,
			Count:      row.Count,
		})
	}

	return totals, nil
}

// filteredQuery scopes a transactions query to an owner and an optional
// inclusive date range
func (r *TransactionRepository) filteredQuery(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", userID)
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}
	return query
}
