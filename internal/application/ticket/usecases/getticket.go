package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/ticket/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
	"github.com/quickdesk-io/quickdesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID      uint
	RequesterID   uint
	RequesterRole authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	renderer       markdown.Renderer
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		renderer:       renderer,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.RequesterID, query.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	result := dto.ToTicketDTO(t, comments, attachments)

	// Rendering failures degrade to plain text rather than failing the read.
	if html, renderErr := uc.renderer.Render(t.Description()); renderErr == nil {
		result.DescriptionHTML = html
	}
	for i := range result.Comments {
		if html, renderErr := uc.renderer.Render(result.Comments[i].Body); renderErr == nil {
			result.Comments[i].BodyHTML = html
		}
	}

	return result, nil
}
