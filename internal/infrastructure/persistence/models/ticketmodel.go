package models

import "github.com/quickdesk-io/quickdesk/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Subject     string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	CategoryID  uint   `gorm:"not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Upvotes     int    `gorm:"not null;default:0"`
	Downvotes   int    `gorm:"not null;default:0"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

type AttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	UploaderID  uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	StoredName  string `gorm:"uniqueIndex;size:255;not null"`
	ContentType string `gorm:"size:100"`
	Size        int64  `gorm:"not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

// VoteModel holds one row per (user, ticket) pair; the composite unique
// index is what makes repeat votes an update instead of an insert.
type VoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;uniqueIndex:idx_ticket_user_vote"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_ticket_user_vote"`
	Value     string `gorm:"size:10;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (VoteModel) TableName() string {
	return constants.TableVotes
}
