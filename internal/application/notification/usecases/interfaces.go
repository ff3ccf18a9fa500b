package usecases

import "context"

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type MarkNotificationReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationReadCommand) error
}

type MarkAllNotificationsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllNotificationsReadCommand) error
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error)
}
