package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/application/ticket/usecases"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Subject:     r.Subject,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Priority:    r.Priority,
		CreatorID:   creatorID,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type CastVoteRequest struct {
	Value string `json:"value" binding:"required,oneof=up down"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	CategoryID uint
	AssigneeID uint
	Search     string
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToQuery(requesterID uint, role authorization.UserRole) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:        r.Status,
		Priority:      r.Priority,
		CategoryID:    r.CategoryID,
		AssigneeID:    r.AssigneeID,
		Search:        r.Search,
		Page:          r.Page,
		PageSize:      r.PageSize,
		SortBy:        r.SortBy,
		SortOrder:     r.SortOrder,
		RequesterID:   requesterID,
		RequesterRole: role,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	req := &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid category_id")
		}
		req.CategoryID = uint(categoryID)
	}

	if assigneeIDStr := c.Query("assignee_id"); assigneeIDStr != "" {
		assigneeID, err := strconv.ParseUint(assigneeIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assignee_id")
		}
		req.AssigneeID = uint(assigneeID)
	}

	return req, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	return parseIDParam(c, "id", "invalid ticket ID")
}

func parseAttachmentID(c *gin.Context) (uint, error) {
	return parseIDParam(c, "attachmentID", "invalid attachment ID")
}

func parseIDParam(c *gin.Context, name, message string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(message)
	}
	return uint(id), nil
}
