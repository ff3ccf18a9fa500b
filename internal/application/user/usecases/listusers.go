package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/user/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Role          string
	Search        string
	Page          int
	PageSize      int
	RequesterRole authorization.UserRole
}

type ListUsersResult struct {
	Users    []dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if !authorization.HasCapability(query.RequesterRole, authorization.CapUserManage) {
		return nil, errors.NewForbiddenError("only admins can list users")
	}

	filter := user.UserFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if query.Role != "" {
		role := authorization.UserRole(query.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError("invalid role filter")
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	items := make([]dto.UserDTO, len(users))
	for i, u := range users {
		items[i] = *dto.ToUserDTO(u)
	}

	return &ListUsersResult{
		Users:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
