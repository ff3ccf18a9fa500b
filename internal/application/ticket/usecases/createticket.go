package usecases

import (
	"context"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/category"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	CategoryID  uint
	Priority    string
	CreatorID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo category.CategoryRepository
	dispatcher   events.EventPublisher
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo category.CategoryRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "subject", cmd.Subject, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, errors.NewValidationError("category does not exist")
	}

	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		cmd.CategoryID,
		vo.Priority(cmd.Priority),
		cmd.CreatorID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if err := uc.dispatcher.Publish(ticket.NewTicketCreatedEvent(newTicket)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "error", err, "ticket_id", newTicket.ID())
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Subject) == 0 {
		return errors.NewValidationError("subject is required")
	}

	if len(cmd.Subject) > 200 {
		return errors.NewValidationError("subject exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}

	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
