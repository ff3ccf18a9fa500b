package dto

import (
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/notification"
)

type NotificationDTO struct {
	ID        uint           `json:"id"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	TicketID  *uint          `json:"ticket_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:        n.ID(),
		Type:      n.Type(),
		Message:   n.Message(),
		TicketID:  n.TicketID(),
		Payload:   n.Payload(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}
