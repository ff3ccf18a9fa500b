package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	apperrors "github.com/quickdesk-io/quickdesk/internal/shared/errors"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	t.Run("returns the ticket with comments, attachments and rendered markdown", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}
		commentRepo := &mockCommentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				c, err := ticket.ReconstructComment(200, ticketID, 9, "On it.", testTime())
				require.NoError(t, err)
				return []*ticket.Comment{c}, nil
			},
		}
		attachmentRepo := &mockAttachmentRepository{
			GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
				a, err := ticket.ReconstructAttachment(300, ticketID, 7, "invoice.pdf", "stored.pdf", "application/pdf", 2048, testTime())
				require.NoError(t, err)
				return []*ticket.Attachment{a}, nil
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, &mockRenderer{}, newTestLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:      42,
			RequesterID:   7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.ID)
		assert.NotEmpty(t, result.DescriptionHTML)
		require.Len(t, result.Comments, 1)
		assert.Equal(t, "On it.", result.Comments[0].Body)
		assert.Equal(t, "<p>On it.</p>", result.Comments[0].BodyHTML)
		require.Len(t, result.Attachments, 1)
		assert.Equal(t, "invoice.pdf", result.Attachments[0].FileName)
	})

	t.Run("render failure degrades to plain text", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}
		renderer := &mockRenderer{
			RenderFunc: func(markdown string) (string, error) {
				return "", assert.AnError
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, &mockCommentRepository{}, &mockAttachmentRepository{}, renderer, newTestLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:      42,
			RequesterID:   7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.NoError(t, err)
		assert.Empty(t, result.DescriptionHTML)
		assert.NotEmpty(t, result.Description)
	})

	t.Run("end users cannot view other users' tickets", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, &mockCommentRepository{}, &mockAttachmentRepository{}, &mockRenderer{}, newTestLogger())

		_, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:      42,
			RequesterID:   99,
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("the assignee can view the ticket", func(t *testing.T) {
		assigneeID := uint(9)

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return ticket.ReconstructTicket(
					ticketID, "subject", "description", 3,
					vo.PriorityMedium, vo.StatusInProgress, 7, &assigneeID,
					0, 0, testTime(), testTime(),
				)
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, &mockCommentRepository{}, &mockAttachmentRepository{}, &mockRenderer{}, newTestLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:      42,
			RequesterID:   9,
			RequesterRole: authorization.RoleEndUser,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.ID)
	})

	t.Run("missing ticket returns not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, &mockCommentRepository{}, &mockAttachmentRepository{}, &mockRenderer{}, newTestLogger())

		_, err := uc.Execute(context.Background(), GetTicketQuery{
			TicketID:      404,
			RequesterID:   7,
			RequesterRole: authorization.RoleAdmin,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	t.Run("admins can delete a ticket", func(t *testing.T) {
		deleted := false

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusClosed, 7), nil
			},
			DeleteFunc: func(ctx context.Context, ticketID uint) error {
				deleted = true
				assert.Equal(t, uint(42), ticketID)
				return nil
			},
		}

		uc := NewDeleteTicketUseCase(ticketRepo, newTestLogger())

		result, err := uc.Execute(context.Background(), DeleteTicketCommand{
			TicketID:      42,
			RequesterID:   2,
			RequesterRole: authorization.RoleAdmin,
		})

		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, uint(42), result.TicketID)
	})

	t.Run("agents cannot delete tickets", func(t *testing.T) {
		uc := NewDeleteTicketUseCase(&mockTicketRepository{}, newTestLogger())

		_, err := uc.Execute(context.Background(), DeleteTicketCommand{
			TicketID:      42,
			RequesterID:   9,
			RequesterRole: authorization.RoleAgent,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	t.Run("staff get global counts", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error) {
				assert.Nil(t, creatorID)
				return map[vo.TicketStatus]int64{
					vo.StatusOpen:       4,
					vo.StatusInProgress: 2,
					vo.StatusResolved:   1,
				}, nil
			},
		}

		uc := NewGetDashboardUseCase(ticketRepo, newTestLogger())

		result, err := uc.Execute(context.Background(), GetDashboardQuery{
			RequesterID:   9,
			RequesterRole: authorization.RoleAgent,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(4), result.Open)
		assert.Equal(t, int64(2), result.InProgress)
		assert.Equal(t, int64(1), result.Resolved)
		assert.Equal(t, int64(0), result.Closed)
		assert.Equal(t, int64(7), result.Total)
	})

	t.Run("end users get counts scoped to their own tickets", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			CountByStatusFunc: func(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error) {
				require.NotNil(t, creatorID)
				assert.Equal(t, uint(7), *creatorID)
				return map[vo.TicketStatus]int64{vo.StatusOpen: 1}, nil
			},
		}

		uc := NewGetDashboardUseCase(ticketRepo, newTestLogger())

		result, err := uc.Execute(context.Background(), GetDashboardQuery{
			RequesterID:   7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Open)
		assert.Equal(t, int64(1), result.Total)
	})
}
