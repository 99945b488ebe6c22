package auth

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(0.5, 2), handler.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		authGroup.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
