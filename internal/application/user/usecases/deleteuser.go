package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID        uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type DeleteUserResult struct {
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.UserRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapUserManage) {
		return nil, errors.NewForbiddenError("only admins can delete users")
	}

	if cmd.UserID == cmd.RequesterID {
		return nil, errors.NewValidationError("you cannot delete your own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "deleted_by", cmd.RequesterID)

	return &DeleteUserResult{UserID: cmd.UserID}, nil
}
