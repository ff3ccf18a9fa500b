package usecases

import (
	"context"
	"io"

	"github.com/quickdesk-io/quickdesk/internal/application/ticket/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/storage"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type AttachFileCommand struct {
	TicketID      uint
	FileName      string
	ContentType   string
	Size          int64
	Reader        io.Reader
	UploaderID    uint
	RequesterRole authorization.UserRole
}

type AttachFileUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	store          storage.FileStore
	logger         logger.Interface
}

func NewAttachFileUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	store storage.FileStore,
	logger logger.Interface,
) *AttachFileUseCase {
	return &AttachFileUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *AttachFileUseCase) Execute(ctx context.Context, cmd AttachFileCommand) (*dto.AttachmentDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Reader == nil {
		return nil, errors.NewValidationError("file content is required")
	}
	if cmd.Size > constants.MaxAttachmentBytes {
		return nil, errors.NewValidationError("file exceeds the 16 MB limit")
	}

	sanitized := ticket.SanitizeFilename(cmd.FileName)
	if sanitized == "" {
		return nil, errors.NewValidationError("invalid file name")
	}
	if !ticket.IsAllowedAttachment(sanitized) {
		return nil, errors.NewValidationError("file type is not allowed")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(cmd.UploaderID, cmd.RequesterRole) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}
	if t.Status().IsClosed() {
		return nil, errors.NewValidationError("cannot attach files to a closed ticket")
	}

	storedName, size, err := uc.store.Save(cmd.Reader, cmd.FileName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	attachment, err := ticket.NewAttachment(t.ID(), cmd.UploaderID, cmd.FileName, storedName, cmd.ContentType, size)
	if err != nil {
		// The file is already on disk; clean it up so failed uploads
		// leave nothing behind.
		if removeErr := uc.store.Remove(storedName); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned upload", "error", removeErr, "stored_name", storedName)
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		if removeErr := uc.store.Remove(storedName); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned upload", "error", removeErr, "stored_name", storedName)
		}
		uc.logger.Errorw("failed to save attachment", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"ticket_id", t.ID(),
		"attachment_id", attachment.ID(),
		"file_name", attachment.FileName(),
		"size", attachment.Size())

	return &dto.AttachmentDTO{
		ID:          attachment.ID(),
		FileName:    attachment.FileName(),
		StoredName:  attachment.StoredName(),
		ContentType: attachment.ContentType(),
		Size:        attachment.Size(),
		UploaderID:  attachment.UploaderID(),
		CreatedAt:   attachment.CreatedAt(),
	}, nil
}
