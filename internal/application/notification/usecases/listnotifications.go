package usecases

import (
	"context"

	"github.com/quickdesk-io/quickdesk/internal/application/notification/dto"
	"github.com/quickdesk-io/quickdesk/internal/domain/notification"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type ListNotificationsResult struct {
	Notifications []dto.NotificationDTO
	Total         int64
	Page          int
	PageSize      int
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	filter := notification.NotificationFilter{
		UnreadOnly: query.UnreadOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	notifications, total, err := uc.notificationRepo.ListByUser(ctx, query.UserID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", query.UserID)
		return nil, err
	}

	items := make([]dto.NotificationDTO, len(notifications))
	for i, n := range notifications {
		items[i] = *dto.ToNotificationDTO(n)
	}

	return &ListNotificationsResult{
		Notifications: items,
		Total:         total,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}, nil
}
