package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	GetByID(ctx context.Context, notificationID uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, filters NotificationFilter) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
}

type NotificationFilter struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}
