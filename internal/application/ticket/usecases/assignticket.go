package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID      uint
	AssigneeID    uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type AssignTicketResult struct {
	TicketID   uint
	AssigneeID uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	if !authorization.HasCapability(cmd.RequesterRole, authorization.CapTicketAssign) {
		return nil, errors.NewForbiddenError("only agents and admins can assign tickets")
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewValidationError("assignee does not exist")
	}
	if !assignee.Role().IsStaff() {
		return nil, errors.NewValidationError("tickets can only be assigned to agents or admins")
	}
	if !assignee.IsActive() {
		return nil, errors.NewValidationError("cannot assign tickets to a deactivated user")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.AssignTo(cmd.AssigneeID, cmd.RequesterID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket assignment", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	if err := uc.dispatcher.Publish(ticket.NewTicketAssignedEvent(t, cmd.AssigneeID, cmd.RequesterID)); err != nil {
		uc.logger.Warnw("failed to publish ticket assigned event", "error", err, "ticket_id", t.ID())
	}

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(),
		"assignee_id", cmd.AssigneeID,
		"assigned_by", cmd.RequesterID)

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: cmd.AssigneeID,
	}, nil
}
