package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/quickdesk-io/quickdesk/internal/domain/notification"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) (*models.NotificationModel, error) {
	model := &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type(),
		Message:   n.Message(),
		TicketID:  n.TicketID(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}

	if len(n.Payload()) > 0 {
		raw, err := json.Marshal(n.Payload())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		model.Payload = datatypes.JSON(raw)
	}

	return model, nil
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	var payload map[string]any
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload of notification %d: %w", model.ID, err)
		}
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.Type,
		model.Message,
		model.TicketID,
		payload,
		model.IsRead,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
