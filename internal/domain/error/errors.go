package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidType         = 4002
	CodeInvalidCategory     = 4003
	CodeDescriptionTooLong  = 4004
	CodeInvalidName         = 4005
	CodeInvalidEmail        = 4006
	CodeWeakPassword        = 4007
	CodeInvalidDateRange    = 4008
	CodeInvalidCredentials  = 4010
	CodeInvalidToken        = 4011
	CodeTokenExpired        = 4012
	CodeAccountDisabled     = 4013
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeEmailTaken          = 4090
	CodeDuplicateReference  = 4091

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Validation errors - malformed or out-of-range input
var (
	// ErrInvalidAmount is returned when the amount is not a positive number
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidType is returned when the transaction type is not income or expense
	ErrInvalidType = errors.New("transaction type must be income or expense")

	// ErrInvalidCategory is returned when the category is not in the allowed set for the type
	ErrInvalidCategory = errors.New("invalid category for transaction type")

	// ErrDescriptionTooLong is returned when the description exceeds the allowed length
	ErrDescriptionTooLong = errors.New("description must not exceed 200 characters")

	// ErrInvalidName is returned when the display name is outside the allowed length
	ErrInvalidName = errors.New("name must be between 2 and 50 characters")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when the password is shorter than the minimum
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrInvalidDateRange is returned when a date filter cannot be parsed
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Auth errors - credential and token failures
var (
	// ErrInvalidCredentials is returned when email or password do not match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when the bearer token is missing or malformed
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrTokenExpired is returned when the bearer token is past its expiry
	ErrTokenExpired = errors.New("authentication token has expired")

	// ErrAccountDisabled is returned when the referenced account is inactive
	ErrAccountDisabled = errors.New("account has been disabled")
)

// Not-found and conflict errors
var (
	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when a transaction is absent or owned by another user
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrEmailTaken is returned when registering with an email that is already in use
	ErrEmailTaken = errors.New("email is already in use")

	// ErrDuplicateReference is returned when a client reference was already recorded
	ErrDuplicateReference = errors.New("transaction with this reference already exists")
)

// Server errors
var (
	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidType):
		return CodeInvalidType
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrDescriptionTooLong):
		return CodeDescriptionTooLong
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrWeakPassword):
		return CodeWeakPassword
	case errors.Is(err, ErrInvalidDateRange):
		return CodeInvalidDateRange
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrAccountDisabled):
		return CodeAccountDisabled
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrEmailTaken):
		return CodeEmailTaken
	case errors.Is(err, ErrDuplicateReference):
		return CodeDuplicateReference
	default:
		return CodeInternalServer
	}
}

// IsValidationError checks if the error is a malformed-input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrInvalidDateRange)
}

// IsAuthError checks if the error is a credential or token failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrAccountDisabled)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error is a uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrDuplicateReference)
}

// LedgerError represents a failure while adjusting a user's cached balance
type LedgerError struct {
	UserID     string
	DeltaCents int64
	Err        error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger operation failed for user %s (delta: %d cents): %v",
		e.UserID, e.DeltaCents, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "ledger_error",
		"user_id":     e.UserID,
		"delta_cents": e.DeltaCents,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID string, deltaCents int64, err error) error {
	return &LedgerError{
		UserID:     userID,
		DeltaCents: deltaCents,
		Err:        err,
	}
}

// CategoryError provides detail about a category rejected for a transaction type
type CategoryError struct {
	Type     string
	Category string
}

// Error implements the error interface
func (e *CategoryError) Error() string {
	return fmt.Sprintf("category %q is not allowed for type %q", e.Category, e.Type)
}

// Is checks if the target error is an ErrInvalidCategory
func (e *CategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// LogFields returns a map of fields for structured logging
func (e *CategoryError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "category_error",
		"type":       e.Type,
		"category":   e.Category,
		"error_code": CodeInvalidCategory,
	}
}

// NewCategoryError creates a new detailed category validation error
func NewCategoryError(transactionType, category string) error {
	return &CategoryError{
		Type:     transactionType,
		Category: category,
	}
}
