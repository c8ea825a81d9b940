package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and profile HTTP requests
type AuthHandler struct {
	authService usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Name, email and password are required"))
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.AuthData{
		User:  dto.NewUserResponse(result.User),
		Token: result.Token,
	}))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Email and password are required"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AuthData{
		User:  dto.NewUserResponse(result.User),
		Token: result.Token,
	}))
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.NewUserResponse(profile)))
}
