package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/category/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID    uint
	Name          *string
	Description   *string
	RequesterRole authorization.UserRole
}

type UpdateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapCategoryManage) {
		return nil, errors.NewForbiddenError("only admins can manage categories")
	}

	existing, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	if cmd.Name != nil {
		if err := existing.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := existing.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.categoryRepo.Update(ctx, existing); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a category with this name already exists")
		}
		uc.logger.Errorw("failed to update category", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}

	uc.logger.Infow("category updated", "category_id", existing.ID())

	return dto.ToCategoryDTO(existing), nil
}
