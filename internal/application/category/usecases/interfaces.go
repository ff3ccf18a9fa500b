package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/category/dto"
)

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]dto.CategoryDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error)
}
