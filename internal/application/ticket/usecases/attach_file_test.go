package usecases

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	apperrors "github.com/quickdesk-io/quickdesk/internal/shared/errors"
)

func TestAttachFileUseCase_Execute(t *testing.T) {
	t.Run("stores the file and records the attachment", func(t *testing.T) {
		var saved *ticket.Attachment

		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}
		attachmentRepo := &mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, attachment *ticket.Attachment) error {
				attachment.SetID(300)
				saved = attachment
				return nil
			},
		}
		store := &mockFileStore{
			SaveFunc: func(r io.Reader, originalName string) (string, int64, error) {
				return "1717243200-abcd1234.pdf", 2048, nil
			},
		}

		uc := NewAttachFileUseCase(ticketRepo, attachmentRepo, store, newTestLogger())

		result, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "invoice.pdf",
			ContentType:   "application/pdf",
			Size:          2048,
			Reader:        strings.NewReader("%PDF-1.4"),
			UploaderID:    7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(300), result.ID)
		assert.Equal(t, "invoice.pdf", result.FileName)
		assert.Equal(t, "1717243200-abcd1234.pdf", result.StoredName)
		assert.Equal(t, int64(2048), result.Size)
		assert.Empty(t, store.removed)
	})

	t.Run("disallowed extension is rejected before touching storage", func(t *testing.T) {
		storeCalled := false
		store := &mockFileStore{
			SaveFunc: func(r io.Reader, originalName string) (string, int64, error) {
				storeCalled = true
				return "", 0, nil
			},
		}

		uc := NewAttachFileUseCase(&mockTicketRepository{}, &mockAttachmentRepository{}, store, newTestLogger())

		_, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "payload.exe",
			Size:          100,
			Reader:        strings.NewReader("MZ"),
			UploaderID:    7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.False(t, storeCalled)
	})

	t.Run("declared size above the limit is rejected", func(t *testing.T) {
		uc := NewAttachFileUseCase(&mockTicketRepository{}, &mockAttachmentRepository{}, &mockFileStore{}, newTestLogger())

		_, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "huge.png",
			Size:          constants.MaxAttachmentBytes + 1,
			Reader:        strings.NewReader("x"),
			UploaderID:    7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("path traversal names are sanitized to the base name", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}
		attachmentRepo := &mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, attachment *ticket.Attachment) error {
				attachment.SetID(301)
				return nil
			},
		}
		store := &mockFileStore{
			SaveFunc: func(r io.Reader, originalName string) (string, int64, error) {
				return "1717243200-abcd1234.txt", 5, nil
			},
		}

		uc := NewAttachFileUseCase(ticketRepo, attachmentRepo, store, newTestLogger())

		result, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "../../etc/notes.txt",
			Size:          5,
			Reader:        strings.NewReader("hello"),
			UploaderID:    7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.NoError(t, err)
		assert.Equal(t, "notes.txt", result.FileName)
	})

	t.Run("uploads to other users' tickets are forbidden for end users", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}

		uc := NewAttachFileUseCase(ticketRepo, &mockAttachmentRepository{}, &mockFileStore{}, newTestLogger())

		_, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "photo.jpg",
			Size:          100,
			Reader:        strings.NewReader("x"),
			UploaderID:    99,
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("closed tickets reject uploads", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusClosed, 7), nil
			},
		}

		uc := NewAttachFileUseCase(ticketRepo, &mockAttachmentRepository{}, &mockFileStore{}, newTestLogger())

		_, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "photo.jpg",
			Size:          100,
			Reader:        strings.NewReader("x"),
			UploaderID:    7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("failed database save removes the stored file", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return newTestTicket(t, ticketID, vo.StatusOpen, 7), nil
			},
		}
		attachmentRepo := &mockAttachmentRepository{
			SaveFunc: func(ctx context.Context, attachment *ticket.Attachment) error {
				return assert.AnError
			},
		}
		store := &mockFileStore{
			SaveFunc: func(r io.Reader, originalName string) (string, int64, error) {
				return "1717243200-abcd1234.pdf", 2048, nil
			},
		}

		uc := NewAttachFileUseCase(ticketRepo, attachmentRepo, store, newTestLogger())

		_, err := uc.Execute(context.Background(), AttachFileCommand{
			TicketID:      42,
			FileName:      "invoice.pdf",
			Size:          2048,
			Reader:        strings.NewReader("%PDF-1.4"),
			UploaderID:    7,
			RequesterRole: authorization.RoleEndUser,
		})

		require.Error(t, err)
		assert.Equal(t, []string{"1717243200-abcd1234.pdf"}, store.removed)
	})
}
