package dto

import (
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

type UserDTO struct {
	ID        uint                   `json:"id"`
	Email     string                 `json:"email"`
	Name      string                 `json:"name"`
	Role      authorization.UserRole `json:"role"`
	IsActive  bool                   `json:"is_active"`
	CreatedAt time.Time              `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      u.Role(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
