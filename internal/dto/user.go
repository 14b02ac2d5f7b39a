package dto

import (
	"time"

	"github.com/SscSPs/wallet_api/internal/core/domain"
)

// RegisterRequest defines the body of POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Jane"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"s3cret!"`
}

// LoginRequest defines the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
