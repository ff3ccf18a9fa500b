package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/category/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute returns all categories. Any authenticated user can read them since
// every ticket form needs the list.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	items := make([]dto.CategoryDTO, len(categories))
	for i, c := range categories {
		items[i] = *dto.ToCategoryDTO(c)
	}
	return items, nil
}
