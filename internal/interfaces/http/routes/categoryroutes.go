package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/middleware"
	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
)

type CategoryRouteConfig struct {
	CategoryHandler *handlers.CategoryHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCategoryRoutes(engine *gin.Engine, config *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.POST("",
			authorization.RequireCapability(authorization.CapCategoryManage),
			config.CategoryHandler.CreateCategory)
		categories.PUT("/:id",
			authorization.RequireCapability(authorization.CapCategoryManage),
			config.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id",
			authorization.RequireCapability(authorization.CapCategoryManage),
			config.CategoryHandler.DeleteCategory)
	}
}
