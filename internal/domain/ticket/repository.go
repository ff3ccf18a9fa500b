package ticket

import (
	"context"

	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filters TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	CategoryID *uint
	CreatorID  *uint
	AssigneeID *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	GetByStoredName(ctx context.Context, storedName string) (*Attachment, error)
	Delete(ctx context.Context, attachmentID uint) error
}

// Vote is the per-user vote record backing the ticket counters. The
// repository enforces at most one row per (user, ticket) pair.
type Vote struct {
	ID       uint
	TicketID uint
	UserID   uint
	Value    vo.VoteValue
}

type VoteRepository interface {
	Save(ctx context.Context, vote *Vote) error
	Update(ctx context.Context, vote *Vote) error
	GetByUserAndTicket(ctx context.Context, userID, ticketID uint) (*Vote, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
