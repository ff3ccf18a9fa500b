package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/category/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name          string
	Description   string
	RequesterRole authorization.UserRole
}

type CreateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapCategoryManage) {
		return nil, errors.NewForbiddenError("only admins can manage categories")
	}

	newCategory, err := category.NewCategory(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, newCategory); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a category with this name already exists")
		}
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", newCategory.ID(), "name", newCategory.Name())

	return dto.ToCategoryDTO(newCategory), nil
}
