package response

import (
	"airport-ops/internal/data/entity"
)

type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       entity.UserRole `json:"role"`
	Age        *int            `json:"age"`
	Phone      *string         `json:"phone"`
	IsVerified bool            `json:"is_verified"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Age:        user.Age,
		Phone:      user.Phone,
		IsVerified: user.IsVerified,
	}
}
