package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/user/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID        uint
	Name          *string
	Role          *string
	IsActive      *bool
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type UpdateUserUseCase struct {
	userRepo   user.UserRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.UserRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:   userRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapUserManage) {
		return nil, errors.NewForbiddenError("only admins can update users")
	}

	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	// Admins cannot demote or deactivate themselves, which would otherwise
	// make it possible to lock the last admin out of the system.
	if cmd.UserID == cmd.RequesterID {
		if cmd.Role != nil && authorization.UserRole(*cmd.Role) != account.Role() {
			return nil, errors.NewValidationError("you cannot change your own role")
		}
		if cmd.IsActive != nil && !*cmd.IsActive {
			return nil, errors.NewValidationError("you cannot deactivate your own account")
		}
	}

	if cmd.Name != nil {
		if err := account.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	oldRole := account.Role()
	roleChanged := false
	if cmd.Role != nil {
		newRole := authorization.UserRole(*cmd.Role)
		if !newRole.IsValid() {
			return nil, errors.NewValidationError("invalid role")
		}
		if newRole != oldRole {
			if err := account.ChangeRole(newRole); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			roleChanged = true
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			account.Activate()
		} else {
			account.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	if roleChanged {
		if err := uc.dispatcher.Publish(user.NewUserRoleChangedEvent(account, oldRole, cmd.RequesterID)); err != nil {
			uc.logger.Warnw("failed to publish role changed event", "error", err, "user_id", account.ID())
		}
	}

	uc.logger.Infow("user updated", "user_id", account.ID(), "updated_by", cmd.RequesterID)

	return dto.ToUserDTO(account), nil
}
