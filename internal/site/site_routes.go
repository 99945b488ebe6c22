package site

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
	sites := r.Group("/sites")
	sites.Use(middleware.AuthMiddleware())
	sites.Use(middleware.ContextLogger(logger))
	{
		sites.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "site", "read"),
			handler.GetAll,
		)

		sites.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "site", "read"),
			handler.GetById,
		)

		sites.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "site", "create"),
			handler.Create,
		)

		sites.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "site", "update"),
			handler.Update,
		)

		sites.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "site", "delete"),
			handler.Delete,
		)
	}
}
