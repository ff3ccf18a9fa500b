package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/application/ticket/usecases"
	"github.com/quickdesk-io/quickdesk/internal/infrastructure/storage"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
	"github.com/quickdesk-io/quickdesk/internal/shared/logger"
	"github.com/quickdesk-io/quickdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	assignTicketUC usecases.AssignTicketExecutor
	addCommentUC   usecases.AddCommentExecutor
	castVoteUC     usecases.CastVoteExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	attachFileUC   usecases.AttachFileExecutor
	dashboardUC    usecases.GetDashboardExecutor
	store          storage.FileStore
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	castVoteUC usecases.CastVoteExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	attachFileUC usecases.AttachFileExecutor,
	dashboardUC usecases.GetDashboardExecutor,
	store storage.FileStore,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		changeStatusUC: changeStatusUC,
		assignTicketUC: assignTicketUC,
		addCommentUC:   addCommentUC,
		castVoteUC:     castVoteUC,
		deleteTicketUC: deleteTicketUC,
		attachFileUC:   attachFileUC,
		dashboardUC:    dashboardUC,
		store:          store,
		logger:         logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:      ticketID,
		RequesterID:   userID,
		RequesterRole: role,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(userID, role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// UpdateTicketStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:      ticketID,
		NewStatus:     req.Status,
		RequesterID:   userID,
		RequesterRole: role,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignTicketCommand{
		TicketID:      ticketID,
		AssigneeID:    req.AssigneeID,
		RequesterID:   userID,
		RequesterRole: role,
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID:      ticketID,
		Body:          req.Body,
		AuthorID:      userID,
		RequesterRole: role,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// CastVote handles POST /tickets/:id/vote
func (h *TicketHandler) CastVote(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CastVoteCommand{
		TicketID:      ticketID,
		Value:         req.Value,
		VoterID:       userID,
		RequesterRole: role,
	}

	result, err := h.castVoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vote recorded successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID:      ticketID,
		RequesterID:   userID,
		RequesterRole: role,
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadAttachment handles POST /tickets/:id/attachments
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("a file is required"))
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	cmd := usecases.AttachFileCommand{
		TicketID:      ticketID,
		FileName:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Size:          fileHeader.Size,
		Reader:        file,
		UploaderID:    userID,
		RequesterRole: role,
	}

	result, err := h.attachFileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// DownloadAttachment handles GET /tickets/:id/attachments/:attachmentID.
// Access control rides on the ticket query: whoever may view the ticket may
// fetch its attachments.
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := parseAttachmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:      ticketID,
		RequesterID:   userID,
		RequesterRole: role,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	for _, attachment := range result.Attachments {
		if attachment.ID != attachmentID {
			continue
		}

		path, err := h.store.Path(attachment.StoredName)
		if err != nil {
			h.logger.Errorw("attachment file missing from storage",
				"ticket_id", ticketID,
				"attachment_id", attachmentID,
				"error", err)
			utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment file not found"))
			return
		}

		c.FileAttachment(path, attachment.FileName)
		return
	}

	utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment not found"))
}

// GetDashboard handles GET /tickets/dashboard
func (h *TicketHandler) GetDashboard(c *gin.Context) {
	userID, role, err := handlers.CurrentUser(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetDashboardQuery{
		RequesterID:   userID,
		RequesterRole: role,
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
