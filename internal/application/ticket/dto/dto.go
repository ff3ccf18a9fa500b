package dto

import (
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID              uint            `json:"id"`
	Subject         string          `json:"subject"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"description_html,omitempty"`
	CategoryID      uint            `json:"category_id"`
	Priority        string          `json:"priority"`
	Status          string          `json:"status"`
	CreatorID       uint            `json:"creator_id"`
	AssigneeID      *uint           `json:"assignee_id"`
	Upvotes         int             `json:"upvotes"`
	Downvotes       int             `json:"downvotes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Comments        []CommentDTO    `json:"comments"`
	Attachments     []AttachmentDTO `json:"attachments"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	FileName    string    `json:"file_name"`
	StoredName  string    `json:"stored_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploaderID  uint      `json:"uploader_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketListItemDTO struct {
	ID         uint      `json:"id"`
	Subject    string    `json:"subject"`
	CategoryID uint      `json:"category_id"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	CreatorID  uint      `json:"creator_id"`
	AssigneeID *uint     `json:"assignee_id"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket, comments []*ticket.Comment, attachments []*ticket.Attachment) *TicketDTO {
	if t == nil {
		return nil
	}

	commentDTOs := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, CommentDTO{
			ID:        c.ID(),
			AuthorID:  c.AuthorID(),
			Body:      c.Body(),
			CreatedAt: c.CreatedAt(),
		})
	}

	attachmentDTOs := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, AttachmentDTO{
			ID:          a.ID(),
			FileName:    a.FileName(),
			StoredName:  a.StoredName(),
			ContentType: a.ContentType(),
			Size:        a.Size(),
			UploaderID:  a.UploaderID(),
			CreatedAt:   a.CreatedAt(),
		})
	}

	return &TicketDTO{
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
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		Comments:    commentDTOs,
		Attachments: attachmentDTOs,
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Subject:    t.Subject(),
		CategoryID: t.CategoryID(),
		Priority:   t.Priority().String(),
		Status:     t.Status().String(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		Upvotes:    t.Upvotes(),
		Downvotes:  t.Downvotes(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}
