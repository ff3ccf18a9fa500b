package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/middleware"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/admin/users")
	users.Use(
		config.AuthMiddleware.RequireAuth(),
		authorization.RequireCapability(authorization.CapUserManage),
	)
	{
		users.GET("", config.UserHandler.ListUsers)
		users.POST("", config.UserHandler.CreateUser)
		users.PATCH("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
