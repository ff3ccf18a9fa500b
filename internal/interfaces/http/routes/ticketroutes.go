package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers/ticket"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/middleware"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths are registered before parameterized paths to avoid
		// route conflicts.
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/dashboard", config.TicketHandler.GetDashboard)

		tickets.PATCH("/:id/status",
			authorization.RequireCapability(authorization.CapTicketStatusUpdate),
			config.TicketHandler.UpdateTicketStatus)
		tickets.POST("/:id/assign",
			authorization.RequireCapability(authorization.CapTicketAssign),
			config.TicketHandler.AssignTicket)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.POST("/:id/vote", config.TicketHandler.CastVote)
		tickets.POST("/:id/attachments", config.TicketHandler.UploadAttachment)
		tickets.GET("/:id/attachments/:attachmentID", config.TicketHandler.DownloadAttachment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			authorization.RequireCapability(authorization.CapTicketDelete),
			config.TicketHandler.DeleteTicket)
	}
}
