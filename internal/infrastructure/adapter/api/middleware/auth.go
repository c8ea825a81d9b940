package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// userContextKey is where the authenticated user is stored on the gin context
const userContextKey = "currentUser"

// Auth resolves the bearer token on every protected route and stores the
// authenticated user on the context
func Auth(authService usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Success: false,
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Authorization token required",
			})
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Authentication failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Success: false,
				Code:    domainerr.ErrorCode(err),
				Message: err.Error(),
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by the Auth middleware
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x" header
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
