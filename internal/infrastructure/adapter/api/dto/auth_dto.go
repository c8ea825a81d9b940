package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the sanitized user representation. The password hash never
// leaves the server.
type UserResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	TotalBalance json.Number `json:"totalBalance"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// AuthData is the data payload of register and login responses
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewUserResponse maps a user entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		TotalBalance: json.Number(entity.FormatCents(user.BalanceCents())),
		CreatedAt:    user.CreatedAt,
	}
}
