package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// CreateTransactionRequest is the payload for creating or updating a
// transaction. Amount is a json.Number so decimal input reaches the parser
// without passing through a float.
type CreateTransactionRequest struct {
	Type        string      `json:"type" binding:"required"`
	Amount      json.Number `json:"amount" binding:"required"`
	Category    string      `json:"category" binding:"required"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Reference   string      `json:"reference"`
}

// AddMoneyRequest is the payload for an account top-up
type AddMoneyRequest struct {
	Amount      json.Number `json:"amount" binding:"required"`
	Description string      `json:"description"`
	Reference   string      `json:"reference"`
}

// TransactionResponse is the API representation of a single transaction
type TransactionResponse struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date"`
	Reference   string      `json:"reference,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// LedgerData is the data payload of the add-money response, which reports the
// balance alongside the created transaction
type LedgerData struct {
	Transaction TransactionResponse `json:"transaction"`
	NewBalance  json.Number         `json:"newBalance"`
}

// PaginationResponse carries page metadata alongside a listing
type PaginationResponse struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// ListData is the data payload of a transaction listing
type ListData struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// OverviewEntry is one per-type aggregate in the statistics overview
type OverviewEntry struct {
	Type  string      `json:"type"`
	Total json.Number `json:"total"`
	Count int64       `json:"count"`
}

// CategoryEntry is one per-category aggregate in the expense breakdown
type CategoryEntry struct {
	Category string      `json:"category"`
	Total    json.Number `json:"total"`
	Count    int64       `json:"count"`
}

// StatisticsData is the data payload of the statistics endpoint
type StatisticsData struct {
	Overview          []OverviewEntry `json:"overview"`
	CategoryBreakdown []CategoryEntry `json:"categoryBreakdown"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Type:        string(txn.Type),
		Amount:      json.Number(entity.FormatCents(txn.AmountCents)),
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date,
		Reference:   txn.Reference,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// NewLedgerData maps a ledger result to its API representation
func NewLedgerData(result *usecase.LedgerResult) LedgerData {
	return LedgerData{
		Transaction: NewTransactionResponse(result.Transaction),
		NewBalance:  json.Number(entity.FormatCents(result.NewBalance)),
	}
}

// NewListData maps a listing result to its API representation
func NewListData(result *usecase.ListTransactionsResult) ListData {
	transactions := make([]TransactionResponse, 0, len(result.Transactions))
	for _, txn := range result.Transactions {
		transactions = append(transactions, NewTransactionResponse(txn))
	}

	return ListData{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Current: result.Pagination.Current,
			Pages:   result.Pagination.Pages,
			Total:   result.Pagination.Total,
		},
	}
}

// NewStatisticsData maps a statistics result to its API representation
func NewStatisticsData(result *usecase.StatisticsResult) StatisticsData {
	overview := make([]OverviewEntry, 0, len(result.Overview))
	for _, row := range result.Overview {
		overview = append(overview, OverviewEntry{
			Type:  string(row.Type),
			Total: json.Number(entity.FormatCents(row.TotalCents)),
			Count: row.Count,
		})
	}

	breakdown := make([]CategoryEntry, 0, len(result.CategoryBreakdown))
	for _, row := range result.CategoryBreakdown {
		breakdown = append(breakdown, CategoryEntry{
			Category: row.Category,
			Total:    json.Number(entity.FormatCents(row.TotalCents)),
			Count:    row.Count,
		})
	}

	return StatisticsData{
		Overview:          overview,
		CategoryBreakdown: breakdown,
	}
}
