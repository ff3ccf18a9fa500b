package ticket

import (
	"fmt"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	vo "github.com/quickdesk-io/quickdesk/internal/domain/ticket/valueobjects"
)

const (
	EventTypeTicketCreated       = "ticket.created"
	EventTypeTicketStatusChanged = "ticket.status_changed"
	EventTypeTicketAssigned      = "ticket.assigned"
	EventTypeTicketCommentAdded  = "ticket.comment_added"
)

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID  uint        `json:"ticket_id"`
	Subject   string      `json:"subject"`
	Priority  vo.Priority `json:"priority"`
	CreatorID uint        `json:"creator_id"`
}

func NewTicketCreatedEvent(t *Ticket) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", t.ID()),
			EventType:   EventTypeTicketCreated,
			OccurredAt:  time.Now(),
		},
		TicketID:  t.ID(),
		Subject:   t.Subject(),
		Priority:  t.Priority(),
		CreatorID: t.CreatorID(),
	}
}

type TicketStatusChangedEvent struct {
	events.BaseEvent
	TicketID  uint            `json:"ticket_id"`
	Subject   string          `json:"subject"`
	CreatorID uint            `json:"creator_id"`
	OldStatus vo.TicketStatus `json:"old_status"`
	NewStatus vo.TicketStatus `json:"new_status"`
	ChangedBy uint            `json:"changed_by"`
}

func NewTicketStatusChangedEvent(t *Ticket, oldStatus vo.TicketStatus, changedBy uint) *TicketStatusChangedEvent {
	return &TicketStatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", t.ID()),
			EventType:   EventTypeTicketStatusChanged,
			OccurredAt:  time.Now(),
		},
		TicketID:  t.ID(),
		Subject:   t.Subject(),
		CreatorID: t.CreatorID(),
		OldStatus: oldStatus,
		NewStatus: t.Status(),
		ChangedBy: changedBy,
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint   `json:"ticket_id"`
	Subject    string `json:"subject"`
	CreatorID  uint   `json:"creator_id"`
	AssigneeID uint   `json:"assignee_id"`
	AssignedBy uint   `json:"assigned_by"`
}

func NewTicketAssignedEvent(t *Ticket, assigneeID, assignedBy uint) *TicketAssignedEvent {
	return &TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", t.ID()),
			EventType:   EventTypeTicketAssigned,
			OccurredAt:  time.Now(),
		},
		TicketID:   t.ID(),
		Subject:    t.Subject(),
		CreatorID:  t.CreatorID(),
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}

type TicketCommentAddedEvent struct {
	events.BaseEvent
	TicketID   uint        `json:"ticket_id"`
	Subject    string      `json:"subject"`
	Priority   vo.Priority `json:"priority"`
	CreatorID  uint        `json:"creator_id"`
	AssigneeID *uint       `json:"assignee_id,omitempty"`
	CommentID  uint        `json:"comment_id"`
	AuthorID   uint        `json:"author_id"`
}

func NewTicketCommentAddedEvent(t *Ticket, c *Comment) *TicketCommentAddedEvent {
	return &TicketCommentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket:%d", t.ID()),
			EventType:   EventTypeTicketCommentAdded,
			OccurredAt:  time.Now(),
		},
		TicketID:   t.ID(),
		Subject:    t.Subject(),
		Priority:   t.Priority(),
		CreatorID:  t.CreatorID(),
		AssigneeID: t.AssigneeID(),
		CommentID:  c.ID(),
		AuthorID:   c.AuthorID(),
	}
}
