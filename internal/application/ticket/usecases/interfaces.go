package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type CastVoteExecutor interface {
	Execute(ctx context.Context, cmd CastVoteCommand) (*CastVoteResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type AttachFileExecutor interface {
	Execute(ctx context.Context, cmd AttachFileCommand) (*dto.AttachmentDTO, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error)
}
