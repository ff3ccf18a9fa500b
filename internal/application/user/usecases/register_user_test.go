package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	apperrors "github.com/quickdesk-io/quickdesk/internal/shared/errors"
)

func TestRegisterUserUseCase_Execute(t *testing.T) {
	t.Run("registers an end user with a hashed password", func(t *testing.T) {
		var published []events.DomainEvent
		var savedHash string

		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				u.SetID(10)
				savedHash = u.PasswordHash()
				return nil
			},
		}
		dispatcher := &mockEventDispatcher{
			PublishFunc: func(event events.DomainEvent) error {
				published = append(published, event)
				return nil
			},
		}

		uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, dispatcher, newTestLogger())

		result, err := uc.Execute(context.Background(), RegisterUserCommand{
			Email:    "Dana@Example.com",
			Password: "password1",
			Name:     "Dana",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(10), result.ID)
		assert.Equal(t, "dana@example.com", result.Email)
		assert.Equal(t, authorization.RoleEndUser, result.Role)
		assert.True(t, result.IsActive)
		assert.Equal(t, "hashed:password1", savedHash)
		require.Len(t, published, 1)
		assert.Equal(t, user.EventTypeUserRegistered, published[0].GetEventType())
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		userRepo := &mockUserRepository{
			ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
		}

		uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(context.Background(), RegisterUserCommand{
			Email:    "dana@example.com",
			Password: "password1",
			Name:     "Dana",
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("a racing duplicate insert also returns conflict", func(t *testing.T) {
		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				return apperrors.NewConflictError("duplicate entry")
			},
		}

		uc := NewRegisterUserUseCase(userRepo, &mockPasswordHasher{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(context.Background(), RegisterUserCommand{
			Email:    "dana@example.com",
			Password: "password1",
			Name:     "Dana",
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("invalid inputs are rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockEventDispatcher{}, newTestLogger())

		tests := []struct {
			name string
			cmd  RegisterUserCommand
		}{
			{
				name: "malformed email",
				cmd:  RegisterUserCommand{Email: "not-an-email", Password: "password1", Name: "Dana"},
			},
			{
				name: "short password",
				cmd:  RegisterUserCommand{Email: "dana@example.com", Password: "pw1", Name: "Dana"},
			},
			{
				name: "password without a number",
				cmd:  RegisterUserCommand{Email: "dana@example.com", Password: "passwords", Name: "Dana"},
			},
			{
				name: "password without a letter",
				cmd:  RegisterUserCommand{Email: "dana@example.com", Password: "12345678", Name: "Dana"},
			},
			{
				name: "empty name",
				cmd:  RegisterUserCommand{Email: "dana@example.com", Password: "password1"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.cmd)
				require.Error(t, err)
				assert.True(t, apperrors.IsValidationError(err))
			})
		}
	})
}
