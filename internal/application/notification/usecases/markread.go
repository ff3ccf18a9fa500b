package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/domain/notification"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Execute marks one notification read. The repository scopes the update to
// the owning user, so marking another user's notification is a not-found.
func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if cmd.NotificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkRead(ctx, cmd.NotificationID, cmd.UserID); err != nil {
		return errors.NewNotFoundError("notification not found")
	}

	return nil
}

type MarkAllNotificationsReadCommand struct {
	UserID uint
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, cmd MarkAllNotificationsReadCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAllRead(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to mark notifications read", "error", err, "user_id", cmd.UserID)
		return err
	}

	return nil
}

type UnreadCountQuery struct {
	UserID uint
}

type UnreadCountResult struct {
	Count int64
}

type UnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewUnreadCountUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	count, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return &UnreadCountResult{Count: count}, nil
}
