package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/user/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/user/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Email         string
	Password      string
	Name          string
	Role          string
	RequesterRole authorization.UserRole
}

// CreateUserUseCase is the admin path for account creation. Unlike
// self-registration it can grant any role, including agent and admin.
type CreateUserUseCase struct {
	userRepo   user.UserRepository
	hasher     PasswordHasher
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapUserManage) {
		return nil, errors.NewForbiddenError("only admins can create users")
	}

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	newUser, err := user.NewUser(email, cmd.Name, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	if err := uc.dispatcher.Publish(user.NewUserRegisteredEvent(newUser)); err != nil {
		uc.logger.Warnw("failed to publish user registered event", "error", err, "user_id", newUser.ID())
	}

	uc.logger.Infow("user created by admin", "user_id", newUser.ID(), "role", role)

	return dto.ToUserDTO(newUser), nil
}
