package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			handler.GetAll,
		)

		departments.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			handler.GetOptions,
		)

		departments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "department", "read"),
			handler.GetById,
		)

		departments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "department", "create"),
			handler.Create,
		)

		departments.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "department", "update"),
			handler.Update,
		)

		departments.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "department", "delete"),
			handler.Delete,
		)
	}
}
