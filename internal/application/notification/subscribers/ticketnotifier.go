package subscribers

import (
	"context"
	"fmt"

	"github.com/quickdesk-io/quickdesk/internal/domain/notification"
	"github.com/quickdesk-io/quickdesk/internal/domain/shared/events"
	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/domain/user"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/email"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

// TicketNotifier listens for ticket lifecycle events and fans them out as
// in-app notifications, with a best-effort email per recipient. A failed
// delivery is logged and never affects the operation that raised the event.
type TicketNotifier struct {
	notificationRepo notification.NotificationRepository
	userRepo         user.UserRepository
	sender           email.Sender
	logger           logger.Interface
}

func NewTicketNotifier(
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
	sender email.Sender,
	logger logger.Interface,
) *TicketNotifier {
	return &TicketNotifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		sender:           sender,
		logger:           logger,
	}
}

// Register subscribes the notifier to every ticket event type.
func (n *TicketNotifier) Register(dispatcher events.EventSubscriber) error {
	subscriptions := map[string]func(events.DomainEvent) error{
		ticket.EventTypeTicketCreated:       n.handleTicketCreated,
		ticket.EventTypeTicketStatusChanged: n.handleStatusChanged,
		ticket.EventTypeTicketAssigned:      n.handleTicketAssigned,
		ticket.EventTypeTicketCommentAdded:  n.handleCommentAdded,
	}

	for eventType, handler := range subscriptions {
		if err := dispatcher.Subscribe(eventType, events.NewSimpleEventHandler(eventType, handler)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

// handleTicketCreated notifies every agent and admin so new tickets never sit
// unseen in the queue.
func (n *TicketNotifier) handleTicketCreated(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	ctx := context.Background()

	staff, err := n.staffUsers(ctx)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("New ticket #%d: %s", e.TicketID, e.Subject)
	payload := map[string]any{
		"ticket_id": e.TicketID,
		"priority":  e.Priority.String(),
	}

	for _, recipient := range staff {
		if recipient.ID() == e.CreatorID {
			continue
		}
		n.deliver(ctx, recipient, notification.TypeTicketCreated, message, e.TicketID, payload)
	}
	return nil
}

// handleStatusChanged notifies the ticket creator so they always see where
// their request stands.
func (n *TicketNotifier) handleStatusChanged(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketStatusChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	ctx := context.Background()

	creator, err := n.userRepo.GetByID(ctx, e.CreatorID)
	if err != nil {
		return fmt.Errorf("failed to load ticket creator %d: %w", e.CreatorID, err)
	}

	message := fmt.Sprintf("Ticket #%d (%s) moved from %s to %s", e.TicketID, e.Subject, e.OldStatus, e.NewStatus)
	payload := map[string]any{
		"ticket_id":  e.TicketID,
		"old_status": e.OldStatus.String(),
		"new_status": e.NewStatus.String(),
		"changed_by": e.ChangedBy,
	}

	n.deliver(ctx, creator, notification.TypeTicketStatusChanged, message, e.TicketID, payload)
	return nil
}

func (n *TicketNotifier) handleTicketAssigned(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketAssignedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	ctx := context.Background()

	assignee, err := n.userRepo.GetByID(ctx, e.AssigneeID)
	if err != nil {
		return fmt.Errorf("failed to load assignee %d: %w", e.AssigneeID, err)
	}

	message := fmt.Sprintf("You have been assigned ticket #%d: %s", e.TicketID, e.Subject)
	payload := map[string]any{
		"ticket_id":   e.TicketID,
		"assigned_by": e.AssignedBy,
	}

	n.deliver(ctx, assignee, notification.TypeTicketAssigned, message, e.TicketID, payload)
	return nil
}

// handleCommentAdded notifies the creator and the assignee, skipping whoever
// wrote the comment. High and urgent tickets additionally alert every admin.
func (n *TicketNotifier) handleCommentAdded(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketCommentAddedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}

	ctx := context.Background()

	message := fmt.Sprintf("New comment on ticket #%d: %s", e.TicketID, e.Subject)
	payload := map[string]any{
		"ticket_id":  e.TicketID,
		"comment_id": e.CommentID,
		"author_id":  e.AuthorID,
	}

	notified := map[uint]bool{e.AuthorID: true}

	if !notified[e.CreatorID] {
		if creator, err := n.userRepo.GetByID(ctx, e.CreatorID); err == nil {
			n.deliver(ctx, creator, notification.TypeTicketCommented, message, e.TicketID, payload)
			notified[e.CreatorID] = true
		}
	}

	if e.AssigneeID != nil && !notified[*e.AssigneeID] {
		if assignee, err := n.userRepo.GetByID(ctx, *e.AssigneeID); err == nil {
			n.deliver(ctx, assignee, notification.TypeTicketCommented, message, e.TicketID, payload)
			notified[*e.AssigneeID] = true
		}
	}

	if e.Priority.IsEscalated() {
		admins, err := n.userRepo.ListByRole(ctx, authorization.RoleAdmin)
		if err != nil {
			return err
		}
		for _, admin := range admins {
			if notified[admin.ID()] {
				continue
			}
			n.deliver(ctx, admin, notification.TypeTicketCommented, message, e.TicketID, payload)
			notified[admin.ID()] = true
		}
	}
	return nil
}

func (n *TicketNotifier) staffUsers(ctx context.Context) ([]*user.User, error) {
	admins, err := n.userRepo.ListByRole(ctx, authorization.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	agents, err := n.userRepo.ListByRole(ctx, authorization.RoleAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return append(admins, agents...), nil
}

// deliver writes the in-app notification and sends the email. Either failing
// only produces a log entry.
func (n *TicketNotifier) deliver(ctx context.Context, recipient *user.User, kind, message string, ticketID uint, payload map[string]any) {
	id := ticketID
	note, err := notification.NewNotification(recipient.ID(), kind, message, &id)
	if err != nil {
		n.logger.Warnw("failed to build notification", "error", err, "user_id", recipient.ID())
		return
	}
	note.SetPayload(payload)

	if err := n.notificationRepo.Save(ctx, note); err != nil {
		n.logger.Warnw("failed to save notification", "error", err, "user_id", recipient.ID())
	}

	htmlBody := fmt.Sprintf("<p>%s</p>", message)
	if err := n.sender.Send(recipient.Email().String(), message, htmlBody, message); err != nil {
		n.logger.Warnw("failed to send notification email",
			"error", err,
			"user_id", recipient.ID(),
			"type", kind)
	}
}
