package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/application/notification/usecases"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
	"github.com/quickdesk-io/quickdesk/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUC usecases.ListNotificationsExecutor
	markReadUC          usecases.MarkNotificationReadExecutor
	markAllReadUC       usecases.MarkAllNotificationsReadExecutor
	unreadCountUC       usecases.UnreadCountExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC usecases.ListNotificationsExecutor,
	markReadUC usecases.MarkNotificationReadExecutor,
	markAllReadUC usecases.MarkAllNotificationsReadExecutor,
	unreadCountUC usecases.UnreadCountExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		markReadUC:          markReadUC,
		markAllReadUC:       markAllReadUC,
		unreadCountUC:       unreadCountUC,
		logger:              logger,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	query := usecases.ListNotificationsQuery{
		UserID:     userID,
		UnreadOnly: c.Query("unread") == "true",
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

// GetUnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, _, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unreadCountUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"count": result.Count})
}

// MarkAsRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := parseNotificationID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.MarkNotificationReadCommand{
		NotificationID: notificationID,
		UserID:         userID,
	}

	if err := h.markReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, _, err := CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.MarkAllNotificationsReadCommand{UserID: userID}

	if err := h.markAllReadUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

func parseNotificationID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid notification ID")
	}
	return uint(id), nil
}
