package server

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/middleware"
	"github.com/mskim5976-cpu/hr-ai-system/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	servers := r.Group("/servers")
	servers.Use(middleware.AuthMiddleware())
	servers.Use(middleware.ContextLogger(logger))
	{
		servers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "server", "read"),
			handler.GetAll,
		)

		servers.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "server", "read"),
			handler.GetById,
		)

		servers.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "server", "create"),
			handler.Create,
		)

		servers.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "server", "update"),
			handler.Update,
		)

		servers.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "server", "delete"),
			handler.Delete,
		)
	}
}
