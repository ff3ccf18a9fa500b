package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/handlers"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginRateLimit *middleware.RateLimit
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.LoginRateLimit.Handle(), config.AuthHandler.Register)
		auth.POST("/login", config.LoginRateLimit.Handle(), config.AuthHandler.Login)
		auth.POST("/refresh", config.AuthHandler.RefreshToken)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.GET("/me", config.AuthMiddleware.RequireAuth(), config.AuthHandler.GetCurrentUser)
	}
}
