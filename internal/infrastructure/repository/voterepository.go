package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/persistence/mappers"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/persistence/models"
	"github.com/quickdesk-io/quickdesk/internal/shared/db"
	apperrors "github.com/quickdesk-io/quickdesk/internal/shared/errors"
)

type VoteRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewVoteRepository(database *gorm.DB) *VoteRepository {
	return &VoteRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *VoteRepository) Save(ctx context.Context, v *ticket.Vote) error {
	model := r.mapper.VoteToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("vote already exists for user %d on ticket %d", v.UserID, v.TicketID)
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}

	v.ID = model.ID
	return nil
}

func (r *VoteRepository) Update(ctx context.Context, v *ticket.Vote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VoteModel{}).
		Where("id = ?", v.ID).
		Update("value", v.Value.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vote not found")
	}

	return nil
}

// GetByUserAndTicket returns (nil, nil) when the user has not voted yet.
func (r *VoteRepository) GetByUserAndTicket(ctx context.Context, userID, ticketID uint) (*ticket.Vote, error) {
	var model models.VoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND ticket_id = ?", userID, ticketID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vote: %w", err)
	}

	return r.mapper.VoteToDomain(&model)
}

func (r *VoteRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.VoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	return nil
}
