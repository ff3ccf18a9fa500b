package mappers

import (
	"fmt"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
	VoteToModel(v *ticket.Vote) *models.VoteModel
	VoteToDomain(model *models.VoteModel) (*ticket.Vote, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		CategoryID:  t.CategoryID(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Upvotes:     t.Upvotes(),
		Downvotes:   t.Downvotes(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity. Comments
// and attachments must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in ticket %d: %w", model.ID, err)
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		model.Description,
		model.CategoryID,
		priority,
		status,
		model.CreatorID,
		model.AssigneeID,
		model.Upvotes,
		model.Downvotes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		UploaderID:  a.UploaderID(),
		FileName:    a.FileName(),
		StoredName:  a.StoredName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.UploaderID,
		model.FileName,
		model.StoredName,
		model.ContentType,
		model.Size,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) VoteToModel(v *ticket.Vote) *models.VoteModel {
	return &models.VoteModel{
		ID:       v.ID,
		TicketID: v.TicketID,
		UserID:   v.UserID,
		Value:    v.Value.String(),
	}
}

func (m *TicketMapperImpl) VoteToDomain(model *models.VoteModel) (*ticket.Vote, error) {
	value, err := vo.NewVoteValue(model.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid vote value in vote %d: %w", model.ID, err)
	}

	return &ticket.Vote{
		ID:       model.ID,
		TicketID: model.TicketID,
		UserID:   model.UserID,
		Value:    value,
	}, nil
}
