package models

import (
	"gorm.io/datatypes"

	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index:idx_user_read"`
	Type      string         `gorm:"size:50;not null"`
	Message   string         `gorm:"size:500;not null"`
	TicketID  *uint          `gorm:"index"`
	Payload   datatypes.JSON `gorm:"type:json"`
	IsRead    bool           `gorm:"not null;default:false;index:idx_user_read"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
