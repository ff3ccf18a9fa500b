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

func TestCreateUserUseCase_Execute(t *testing.T) {
	t.Run("admins can create agents", func(t *testing.T) {
		userRepo := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				u.SetID(20)
				return nil
			},
		}

		uc := NewCreateUserUseCase(userRepo, &mockPasswordHasher{}, &mockEventDispatcher{}, newTestLogger())

		result, err := uc.Execute(context.Background(), CreateUserCommand{
			Email:         "agent@example.com",
			Password:      "password1",
			Name:          "Agent Smith",
			Role:          "agent",
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAgent, result.Role)
	})

	t.Run("non-admins are forbidden", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(context.Background(), CreateUserCommand{
			Email:         "agent@example.com",
			Password:      "password1",
			Name:          "Agent Smith",
			Role:          "agent",
			RequesterRole: authorization.RoleAgent,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		uc := NewCreateUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockEventDispatcher{}, newTestLogger())

		_, err := uc.Execute(context.Background(), CreateUserCommand{
			Email:         "agent@example.com",
			Password:      "password1",
			Name:          "Agent Smith",
			Role:          "superuser",
			RequesterRole: authorization.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUpdateUserUseCase_Execute(t *testing.T) {
	t.Run("promoting a user publishes the role changed event", func(t *testing.T) {
		var published []events.DomainEvent

		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newTestUser(t, userID, authorization.RoleEndUser, true), nil
			},
		}
		dispatcher := &mockEventDispatcher{
			PublishFunc: func(event events.DomainEvent) error {
				published = append(published, event)
				return nil
			},
		}

		uc := NewUpdateUserUseCase(userRepo, dispatcher, newTestLogger())

		role := "agent"
		result, err := uc.Execute(context.Background(), UpdateUserCommand{
			UserID:        7,
			Role:          &role,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, authorization.RoleAgent, result.Role)
		require.Len(t, published, 1)

		roleEvent, ok := published[0].(*user.UserRoleChangedEvent)
		require.True(t, ok)
		assert.Equal(t, authorization.RoleEndUser, roleEvent.OldRole)
		assert.Equal(t, authorization.RoleAgent, roleEvent.NewRole)
		assert.Equal(t, uint(2), roleEvent.ChangedBy)
	})

	t.Run("same role publishes no event", func(t *testing.T) {
		published := 0

		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newTestUser(t, userID, authorization.RoleAgent, true), nil
			},
		}
		dispatcher := &mockEventDispatcher{
			PublishFunc: func(event events.DomainEvent) error {
				published++
				return nil
			},
		}

		uc := NewUpdateUserUseCase(userRepo, dispatcher, newTestLogger())

		role := "agent"
		_, err := uc.Execute(context.Background(), UpdateUserCommand{
			UserID:        9,
			Role:          &role,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, published)
	})

	t.Run("deactivating an account", func(t *testing.T) {
		var updated *user.User

		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newTestUser(t, userID, authorization.RoleEndUser, true), nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = u
				return nil
			},
		}

		uc := NewUpdateUserUseCase(userRepo, &mockEventDispatcher{}, newTestLogger())

		inactive := false
		result, err := uc.Execute(context.Background(), UpdateUserCommand{
			UserID:        7,
			IsActive:      &inactive,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.False(t, result.IsActive)
		require.NotNil(t, updated)
		assert.False(t, updated.IsActive())
	})

	t.Run("admins cannot change their own role", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newTestUser(t, userID, authorization.RoleAdmin, true), nil
			},
		}

		uc := NewUpdateUserUseCase(userRepo, &mockEventDispatcher{}, newTestLogger())

		role := "end_user"
		_, err := uc.Execute(context.Background(), UpdateUserCommand{
			UserID:        2,
			Role:          &role,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("admins cannot deactivate themselves", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newTestUser(t, userID, authorization.RoleAdmin, true), nil
			},
		}

		uc := NewUpdateUserUseCase(userRepo, &mockEventDispatcher{}, newTestLogger())

		inactive := false
		_, err := uc.Execute(context.Background(), UpdateUserCommand{
			UserID:        2,
			IsActive:      &inactive,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	t.Run("admins can delete other users", func(t *testing.T) {
		deleted := false

		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
				return newTestUser(t, userID, authorization.RoleEndUser, true), nil
			},
			DeleteFunc: func(ctx context.Context, userID uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewDeleteUserUseCase(userRepo, newTestLogger())

		result, err := uc.Execute(context.Background(), DeleteUserCommand{
			UserID:        7,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, uint(7), result.UserID)
	})

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		uc := NewDeleteUserUseCase(&mockUserRepository{}, newTestLogger())

		_, err := uc.Execute(context.Background(), DeleteUserCommand{
			UserID:        2,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("agents are forbidden", func(t *testing.T) {
		uc := NewDeleteUserUseCase(&mockUserRepository{}, newTestLogger())

		_, err := uc.Execute(context.Background(), DeleteUserCommand{
			UserID:        7,
			RequesterID:   9,
			RequesterRole: authorization.RoleAgent,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}

func TestListUsersUseCase_Execute(t *testing.T) {
	t.Run("admins get the filtered page", func(t *testing.T) {
		var gotFilter user.UserFilter

		userRepo := &mockUserRepository{
			ListFunc: func(ctx context.Context, filters user.UserFilter) ([]*user.User, int64, error) {
				gotFilter = filters
				return []*user.User{newTestUser(t, 9, authorization.RoleAgent, true)}, 1, nil
			},
		}

		uc := NewListUsersUseCase(userRepo, newTestLogger())

		result, err := uc.Execute(context.Background(), ListUsersQuery{
			Role:          "agent",
			Page:          1,
			PageSize:      20,
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		require.Len(t, result.Users, 1)
		assert.Equal(t, int64(1), result.Total)
		require.NotNil(t, gotFilter.Role)
		assert.Equal(t, authorization.RoleAgent, *gotFilter.Role)
	})

	t.Run("end users are forbidden", func(t *testing.T) {
		uc := NewListUsersUseCase(&mockUserRepository{}, newTestLogger())

		_, err := uc.Execute(context.Background(), ListUsersQuery{
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}
