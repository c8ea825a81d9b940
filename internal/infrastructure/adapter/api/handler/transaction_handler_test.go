package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	domainerrs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	mcore "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
	muse "github.com/amirhossein-jamali/finance-tracker/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func handlerTestUser(t *testing.T) *entity.User {
	t.Helper()

	tp := new(mcore.MockTimeProvider)
	tp.On("Now").Return(time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC))

	user, err := entity.NewUser("Alice", "alice@example.com", "hash", tp)
	assert.NoError(t, err)
	return user
}

func makeLedgerResult(t *testing.T, user *entity.User, typ, amount, category string, newBalance int64) *portuse.LedgerResult {
	t.Helper()

	tp := new(mcore.MockTimeProvider)
	tp.On("Now").Return(time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC))

	txn, err := entity.NewTransaction(user.ID, typ, amount, category, "", time.Time{}, "", tp)
	assert.NoError(t, err)

	return &portuse.LedgerResult{Transaction: txn, NewBalance: newBalance}
}

// setupAPI wires the real routes with mocked use cases behind an
// authenticated user
func setupAPI(t *testing.T, txnService *muse.MockTransactionUseCase) (*gin.Engine, *entity.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	user := handlerTestUser(t)

	authService := new(muse.MockAuthUseCase)
	authService.On("Authenticate", mock.Anything, "token").Return(user, nil).Maybe()

	logger := quietLogger()
	router := gin.New()

	authHandler := NewAuthHandler(authService, logger)
	transactionHandler := NewTransactionHandler(txnService, logger)

	api := router.Group("/api")
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/profile", middleware.Auth(authService, logger), authHandler.Profile)

	transactionRoutes := api.Group("/transactions")
	transactionRoutes.Use(middleware.Auth(authService, logger))
	transactionRoutes.GET("/statistics", transactionHandler.Statistics)
	transactionRoutes.POST("/add-money", transactionHandler.AddMoney)
	transactionRoutes.GET("", transactionHandler.List)
	transactionRoutes.POST("", transactionHandler.Create)
	transactionRoutes.PUT("/:id", transactionHandler.Update)
	transactionRoutes.DELETE("/:id", transactionHandler.Delete)

	return router, user
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTransactionEndpoint(t *testing.T) {
	t.Run("Valid request returns 201 with the bare transaction", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, user := setupAPI(t, txnService)

		result := makeLedgerResult(t, user, "expense", "25.50", "food", 97450)
		txnService.On("Create", mock.Anything, user.ID, mock.MatchedBy(func(in portuse.CreateTransactionInput) bool {
			return in.Type == "expense" && in.Amount == "25.50" && in.Category == "food"
		})).Return(result, nil)

		rec := doRequest(router, http.MethodPost, "/api/transactions",
			`{"type":"expense","amount":25.50,"category":"food"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount":25.50`)
		assert.Contains(t, rec.Body.String(), `"id":"`+result.Transaction.ID.String()+`"`)
		// The transaction is the data payload itself; only add-money carries
		// a balance alongside it
		assert.NotContains(t, rec.Body.String(), `"transaction"`)
		assert.NotContains(t, rec.Body.String(), `"newBalance"`)
	})

	t.Run("Amount can arrive as a JSON string", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, user := setupAPI(t, txnService)

		result := makeLedgerResult(t, user, "income", "100", "salary", 10000)
		txnService.On("Create", mock.Anything, user.ID, mock.MatchedBy(func(in portuse.CreateTransactionInput) bool {
			return in.Amount == "100"
		})).Return(result, nil)

		rec := doRequest(router, http.MethodPost, "/api/transactions",
			`{"type":"income","amount":"100","category":"salary"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Validation error maps to 400", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, _ := setupAPI(t, txnService)

		txnService.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrs.ErrInvalidAmount)

		rec := doRequest(router, http.MethodPost, "/api/transactions",
			`{"type":"income","amount":0,"category":"salary"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("Missing fields map to 400", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, _ := setupAPI(t, txnService)

		rec := doRequest(router, http.MethodPost, "/api/transactions", `{"type":"income"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		txnService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateTransactionEndpoint(t *testing.T) {
	t.Run("Valid request returns the bare transaction", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, user := setupAPI(t, txnService)

		result := makeLedgerResult(t, user, "income", "10.00", "salary", 1000)
		txnService.On("Update", mock.Anything, user.ID, result.Transaction.ID, mock.Anything).
			Return(result, nil)

		rec := doRequest(router, http.MethodPut, "/api/transactions/"+result.Transaction.ID.String(),
			`{"type":"income","amount":10,"category":"salary"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"`+result.Transaction.ID.String()+`"`)
		assert.NotContains(t, rec.Body.String(), `"newBalance"`)
	})

	t.Run("Malformed id maps to 404", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, _ := setupAPI(t, txnService)

		rec := doRequest(router, http.MethodPut, "/api/transactions/not-a-uuid",
			`{"type":"income","amount":10,"category":"salary"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		txnService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown id maps to 404", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, _ := setupAPI(t, txnService)

		txnService.On("Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrs.ErrTransactionNotFound)

		rec := doRequest(router, http.MethodPut, "/api/transactions/"+uuid.NewString(),
			`{"type":"income","amount":10,"category":"salary"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTransactionEndpoint(t *testing.T) {
	txnService := new(muse.MockTransactionUseCase)
	router, user := setupAPI(t, txnService)

	transactionID := uuid.New()
	txnService.On("Delete", mock.Anything, user.ID, transactionID).Return(nil)

	rec := doRequest(router, http.MethodDelete, "/api/transactions/"+transactionID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestAddMoneyEndpoint(t *testing.T) {
	txnService := new(muse.MockTransactionUseCase)
	router, user := setupAPI(t, txnService)

	result := makeLedgerResult(t, user, "income", "10000.00", "other", 1000000)
	txnService.On("AddMoney", mock.Anything, user.ID, mock.MatchedBy(func(in portuse.AddMoneyInput) bool {
		return in.Amount == "10000.00"
	})).Return(result, nil)

	rec := doRequest(router, http.MethodPost, "/api/transactions/add-money",
		`{"amount":10000.00}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"newBalance":10000.00`)
}

func TestListTransactionsEndpoint(t *testing.T) {
	t.Run("Query parameters reach the use case", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, user := setupAPI(t, txnService)

		txnService.On("List", mock.Anything, user.ID, mock.MatchedBy(func(in portuse.ListTransactionsInput) bool {
			return in.Type == "expense" && in.Category == "food" && in.Page == 2 && in.Limit == 5
		})).Return(&portuse.ListTransactionsResult{
			Transactions: []*entity.Transaction{},
			Pagination:   portuse.Pagination{Current: 2, Pages: 4, Total: 17},
		}, nil)

		rec := doRequest(router, http.MethodGet,
			"/api/transactions?type=expense&category=food&page=2&limit=5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":17`)
		assert.Contains(t, rec.Body.String(), `"pages":4`)
	})

	t.Run("Malformed date range maps to 400", func(t *testing.T) {
		txnService := new(muse.MockTransactionUseCase)
		router, _ := setupAPI(t, txnService)

		rec := doRequest(router, http.MethodGet, "/api/transactions?startDate=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		txnService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStatisticsEndpoint(t *testing.T) {
	txnService := new(muse.MockTransactionUseCase)
	router, user := setupAPI(t, txnService)

	txnService.On("Statistics", mock.Anything, user.ID, mock.Anything).
		Return(&portuse.StatisticsResult{}, nil)

	rec := doRequest(router, http.MethodGet, "/api/transactions/statistics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Duplicate email maps to 400", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		authService := new(muse.MockAuthUseCase)
		authService.On("Register", mock.Anything, "Alice", "alice@example.com", "secret1").
			Return(nil, domainerrs.ErrEmailTaken)

		router := gin.New()
		authHandler := NewAuthHandler(authService, quietLogger())
		router.POST("/api/auth/register", authHandler.Register)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			strings.NewReader(`{"name":"Alice","email":"alice@example.com","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := handlerTestUser(t)
	user.SetBalanceCents(97450)

	authService := new(muse.MockAuthUseCase)
	authService.On("Authenticate", mock.Anything, "token").Return(user, nil)
	authService.On("GetProfile", mock.Anything, user.ID).Return(user, nil)

	router := gin.New()
	authHandler := NewAuthHandler(authService, quietLogger())
	router.GET("/api/auth/profile", middleware.Auth(authService, quietLogger()), authHandler.Profile)

	rec := doRequest(router, http.MethodGet, "/api/auth/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// The user object is the data payload itself
	assert.Contains(t, rec.Body.String(), `"totalBalance":974.50`)
	assert.NotContains(t, rec.Body.String(), `"user"`)
}

func TestParseDate(t *testing.T) {
	t.Run("Empty yields zero time", func(t *testing.T) {
		parsed, err := parseDate("")
		assert.NoError(t, err)
		assert.True(t, parsed.IsZero())
	})

	t.Run("Date only", func(t *testing.T) {
		parsed, err := parseDate("2023-05-10")
		assert.NoError(t, err)
		assert.Equal(t, 2023, parsed.Year())
		assert.Equal(t, time.May, parsed.Month())
	})

	t.Run("RFC3339", func(t *testing.T) {
		parsed, err := parseDate("2023-05-10T12:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 12, parsed.Hour())
	})

	t.Run("Garbage fails", func(t *testing.T) {
		_, err := parseDate("yesterday")
		assert.Error(t, err)
	})
}
