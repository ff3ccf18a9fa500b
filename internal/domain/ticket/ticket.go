package ticket

import (
	"fmt"
	"time"

	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

const (
	maxSubjectLength     = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id          uint
	subject     string
	description string
	categoryID  uint
	priority    vo.Priority
	status      vo.TicketStatus
	creatorID   uint
	assigneeID  *uint
	upvotes     int
	downvotes   int
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
	attachments []*Attachment
}

func NewTicket(
	subject string,
	description string,
	categoryID uint,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()

	return &Ticket{
		subject:     subject,
		description: description,
		categoryID:  categoryID,
		priority:    priority,
		status:      vo.StatusOpen,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
		attachments: []*Attachment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	subject string,
	description string,
	categoryID uint,
	priority vo.Priority,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	upvotes int,
	downvotes int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if upvotes < 0 || downvotes < 0 {
		return nil, fmt.Errorf("vote counters cannot be negative")
	}

	return &Ticket{
		id:          id,
		subject:     subject,
		description: description,
		categoryID:  categoryID,
		priority:    priority,
		status:      status,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		upvotes:     upvotes,
		downvotes:   downvotes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    []*Comment{},
		attachments: []*Attachment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Upvotes() int {
	return t.upvotes
}

func (t *Ticket) Downvotes() int {
	return t.downvotes
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket along the forward-only workflow. The caller
// is responsible for checking that the actor is allowed to transition.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Ticket) AssignTo(assigneeID uint, assignedBy uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if t.status.IsClosed() {
		return fmt.Errorf("cannot assign a closed ticket")
	}

	t.assigneeID = &assigneeID
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority, changedBy uint) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now().UTC()

	return nil
}

// ApplyVote adjusts the counter pair for a vote change. previous is nil for a
// first vote. Toggling moves one count from the old counter to the new one so
// the pair always matches the distinct-voter distribution.
func (t *Ticket) ApplyVote(previous *vo.VoteValue, next vo.VoteValue) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid vote value: %s", next)
	}

	if previous != nil {
		if *previous == next {
			return nil
		}
		switch *previous {
		case vo.VoteUp:
			if t.upvotes == 0 {
				return fmt.Errorf("upvote counter underflow")
			}
			t.upvotes--
		case vo.VoteDown:
			if t.downvotes == 0 {
				return fmt.Errorf("downvote counter underflow")
			}
			t.downvotes--
		}
	}

	switch next {
	case vo.VoteUp:
		t.upvotes++
	case vo.VoteDown:
		t.downvotes++
	}

	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	t.updatedAt = time.Now().UTC()

	return nil
}

func (t *Ticket) AddAttachment(attachment *Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment cannot be nil")
	}

	if attachment.TicketID() != t.id {
		return fmt.Errorf("attachment ticket ID mismatch")
	}

	t.attachments = append(t.attachments, attachment)

	return nil
}

func (t *Ticket) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	if authorization.CanViewTicket(userID, role, t.creatorID) {
		return true
	}

	if t.assigneeID != nil && *t.assigneeID == userID {
		return true
	}

	return false
}

func (t *Ticket) Validate() error {
	if len(t.subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if t.categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	if t.upvotes < 0 || t.downvotes < 0 {
		return fmt.Errorf("vote counters cannot be negative")
	}
	return nil
}
