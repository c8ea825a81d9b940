package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for transactions.
// The composite indexes mirror the two dominant query shapes: listing by
// owner and date, and filtering by owner and category.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_transactions_user_date,priority:1;index:idx_transactions_user_category,priority:1"`
	Type        string    `gorm:"not null;size:20"`
	AmountCents int64     `gorm:"not null"`
	Category    string    `gorm:"not null;size:50;index:idx_transactions_user_category,priority:2"`
	Description string    `gorm:"size:200"`
	Date        time.Time `gorm:"not null;index:idx_transactions_user_date,priority:2,sort:desc"`
	// Nullable so the per-user unique index (created in migration) skips
	// rows without a reference
	Reference *string   `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
