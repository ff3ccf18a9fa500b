package usecases

import (
	"context"
	"strings"

	"github.com/quickdesk-io/quickdesk/internal/application/user/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/auth"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

// TokenIssuer mints token pairs for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
}

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserResult struct {
	User         *dto.UserDTO
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute authenticates the credentials. Every failure path returns the same
// unauthorized error so the response never reveals whether the email exists.
func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*LoginUserResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if !account.CanLogin() {
		uc.logger.Warnw("login attempt on inactive account", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.Generate(account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", account.ID())
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role())

	return &LoginUserResult{
		User:         dto.ToUserDTO(account),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
