package dto

import (
	"time"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
)

// RegisterRequest defines the data needed to sign up with email and password.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExchangeCodeRequest carries the authorization code from Google's consent screen.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName" binding:"omitempty,min=1,max=100"`
}

type UserResponse struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	AuthProvider string `json:"authProvider"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		AuthProvider: string(user.AuthProvider),
	}
}
