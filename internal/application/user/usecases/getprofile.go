package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/user/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.UserRepository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.ToUserDTO(account), nil
}
