package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type DeleteCategoryCommand struct {
	CategoryID    uint
	RequesterRole authorization.UserRole
}

type DeleteCategoryResult struct {
	CategoryID uint
}

type DeleteCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	ticketRepo   ticket.TicketRepository
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(
	categoryRepo category.CategoryRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		ticketRepo:   ticketRepo,
		logger:       logger,
	}
}

// Execute removes a category that no ticket references. Deleting a category
// that is still in use would orphan those tickets, so it is a conflict.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, cmd DeleteCategoryCommand) (*DeleteCategoryResult, error) {
	if cmd.CategoryID == 0 {
		return nil, errors.NewValidationError("category ID is required")
	}

	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapCategoryManage) {
		return nil, errors.NewForbiddenError("only admins can manage categories")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	inUse, err := uc.ticketRepo.CountByCategory(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to count tickets for category", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}
	if inUse > 0 {
		return nil, errors.NewConflictError("category is in use by existing tickets")
	}

	if err := uc.categoryRepo.Delete(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to delete category", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}

	uc.logger.Infow("category deleted", "category_id", cmd.CategoryID)

	return &DeleteCategoryResult{CategoryID: cmd.CategoryID}, nil
}
