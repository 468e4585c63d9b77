package dto

import (
	"github.com/mgallego/auth-service/internal/auth/domain"
)

type UserOutput struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

func NewUserOutput(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:         user.ID,
		Email:      user.Email,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
	}
}
