package usecases

import (
	"context"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID      uint
	Body          string
	AuthorID      uint
	RequesterRole authorization.UserRole
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Body) == 0 {
		return nil, errors.NewValidationError("comment body is required")
	}
	if len(cmd.Body) > 5000 {
		return nil, errors.NewValidationError("comment exceeds maximum length of 5000 characters")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !authorization.CanCommentTicket(cmd.AuthorID, cmd.RequesterRole, t.CreatorID()) {
		return nil, errors.NewForbiddenError("you cannot comment on this ticket")
	}

	if t.Status().IsClosed() {
		return nil, errors.NewValidationError("cannot comment on a closed ticket")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.AuthorID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	if err := uc.dispatcher.Publish(ticket.NewTicketCommentAddedEvent(t, comment)); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "error", err, "ticket_id", t.ID())
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID(), "author_id", cmd.AuthorID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  t.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
