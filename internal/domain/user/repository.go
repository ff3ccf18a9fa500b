package user

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filters UserFilter) ([]*User, int64, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
}

type UserFilter struct {
	Role     *authorization.UserRole
	Search   string
	Page     int
	PageSize int
}
