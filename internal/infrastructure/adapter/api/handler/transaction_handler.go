package handler

import (
	"net/http"
	"strconv"
	"time"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Type, amount and category are required"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid date format"))
		return
	}

	result, err := h.transactionService.Create(c.Request.Context(), user.ID, usecase.CreateTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount.String(),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		Reference:   req.Reference,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewTransactionResponse(result.Transaction)))
}

// AddMoney handles POST /api/transactions/add-money
func (h *TransactionHandler) AddMoney(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Amount is required"))
		return
	}

	result, err := h.transactionService.AddMoney(c.Request.Context(), user.ID, usecase.AddMoneyInput{
		Amount:      req.Amount.String(),
		Description: req.Description,
		Reference:   req.Reference,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.NewLedgerData(result)))
}

// Update handles PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domainerr.ErrTransactionNotFound)
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Type, amount and category are required"))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid date format"))
		return
	}

	result, err := h.transactionService.Update(c.Request.Context(), user.ID, transactionID, usecase.CreateTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount.String(),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewTransactionResponse(result.Transaction)))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, domainerr.ErrTransactionNotFound)
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), user.ID, transactionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Transaction deleted successfully"))
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	startDate, endDate, err := parseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, domainerr.ErrInvalidDateRange)
		return
	}

	input := usecase.ListTransactionsInput{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      parseIntQuery(c.Query("page")),
		Limit:     parseIntQuery(c.Query("limit")),
	}

	result, err := h.transactionService.List(c.Request.Context(), user.ID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewListData(result)))
}

// Statistics handles GET /api/transactions/statistics
func (h *TransactionHandler) Statistics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	startDate, endDate, err := parseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, domainerr.ErrInvalidDateRange)
		return
	}

	result, err := h.transactionService.Statistics(c.Request.Context(), user.ID, usecase.StatisticsInput{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewStatisticsData(result)))
}

// dateFormats lists the accepted request date layouts
var dateFormats = []string{time.RFC3339, "2006-01-02"}

// parseDate parses an optional request date. An empty string yields the zero
// time, which downstream defaults to the current time on create.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	var lastErr error
	for _, layout := range dateFormats {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseDateRange parses the optional startDate and endDate query parameters
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time

	if start != "" {
		parsed, err := parseDate(start)
		if err != nil {
			return nil, nil, err
		}
		startDate = &parsed
	}
	if end != "" {
		parsed, err := parseDate(end)
		if err != nil {
			return nil, nil, err
		}
		endDate = &parsed
	}

	return startDate, endDate, nil
}

// parseIntQuery parses a numeric query parameter, returning zero when absent
// or malformed so downstream clamping applies the default
func parseIntQuery(value string) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
