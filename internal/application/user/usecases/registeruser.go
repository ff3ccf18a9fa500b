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

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type RegisterUserCommand struct {
	Email    string
	Password string
	Name     string
}

type RegisterUserUseCase struct {
	userRepo   user.UserRepository
	hasher     PasswordHasher
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Execute creates a new end-user account. Self-registration never grants a
// staff role; agents and admins are created by an admin.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
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

	newUser, err := user.NewUser(email, cmd.Name, authorization.RoleEndUser)
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

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String())

	return dto.ToUserDTO(newUser), nil
}
