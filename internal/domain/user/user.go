package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/quickdesk-io/quickdesk/internal/domain/user/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

const maxNameLength = 100

// User is the account aggregate. The password hash is carried alongside the
// domain fields so repositories can persist it without a separate auth store.
type User struct {
	id           uint
	email        *vo.Email
	name         string
	role         authorization.UserRole
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email *vo.Email, name string, role authorization.UserRole) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}

	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()

	return &User{
		email:     email,
		name:      name,
		role:      role,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uint,
	email *vo.Email,
	name string,
	role authorization.UserRole,
	passwordHash string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangeRole(newRole authorization.UserRole) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}
	if u.role == newRole {
		return nil
	}
	u.role = newRole
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) UpdateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", maxNameLength)
	}
	u.name = name
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) UpdateEmail(email *vo.Email) error {
	if email == nil {
		return fmt.Errorf("email is required")
	}
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.updatedAt = time.Now().UTC()
}

func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.updatedAt = time.Now().UTC()
}

func (u *User) CanLogin() bool {
	return u.isActive && u.passwordHash != ""
}
