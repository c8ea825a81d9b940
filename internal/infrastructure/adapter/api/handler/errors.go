package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes. Duplicate email on
// registration is a 400 to match existing client expectations; a replayed
// reference conflicts with stored state and is a 409.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrDuplicateReference):
		return http.StatusConflict
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsAuthError(err):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a domain error as a standardized error response
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
