package usecases

import (
	"context"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID      uint
	NewStatus     string
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapTicketStatusUpdate) {
		return nil, errors.NewForbiddenError("only agents and admins can change ticket status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus, cmd.RequesterID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if oldStatus != t.Status() {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", t.ID())
			return nil, err
		}

		if err := uc.dispatcher.Publish(ticket.NewTicketStatusChangedEvent(t, oldStatus, cmd.RequesterID)); err != nil {
			uc.logger.Warnw("failed to publish status changed event", "error", err, "ticket_id", t.ID())
		}

		uc.logger.Infow("ticket status changed",
			"ticket_id", t.ID(),
			"old_status", oldStatus.String(),
			"new_status", t.Status().String(),
			"changed_by", cmd.RequesterID)
	}

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
