package notification

import (
	"fmt"
	"time"
)

// Notification types mirror the ticket lifecycle moments that fan out to
// interested users.
const (
	TypeTicketCreated       = "ticket_created"
	TypeTicketStatusChanged = "ticket_status_changed"
	TypeTicketAssigned      = "ticket_assigned"
	TypeTicketCommented     = "ticket_commented"
)

const maxMessageLength = 500

// Notification is an in-app message delivered to a single user. Payload
// carries event-specific context such as the old and new status.
type Notification struct {
	id        uint
	userID    uint
	kind      string
	message   string
	ticketID  *uint
	payload   map[string]any
	isRead    bool
	createdAt time.Time
}

func NewNotification(userID uint, kind, message string, ticketID *uint) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if kind == "" {
		return nil, fmt.Errorf("notification type is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message cannot exceed %d characters", maxMessageLength)
	}

	return &Notification{
		userID:    userID,
		kind:      kind,
		message:   message,
		ticketID:  ticketID,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructNotification(id, userID uint, kind, message string, ticketID *uint, payload map[string]any, isRead bool, createdAt time.Time) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		kind:      kind,
		message:   message,
		ticketID:  ticketID,
		payload:   payload,
		isRead:    isRead,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() string {
	return n.kind
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) TicketID() *uint {
	return n.ticketID
}

func (n *Notification) Payload() map[string]any {
	return n.payload
}

// SetPayload attaches event context. Called by notification builders before
// the row is persisted.
func (n *Notification) SetPayload(payload map[string]any) {
	n.payload = payload
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkRead() {
	n.isRead = true
}
