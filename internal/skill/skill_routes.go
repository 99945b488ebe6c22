package skill

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
	skills := r.Group("/skills")
	skills.Use(middleware.AuthMiddleware())
	skills.Use(middleware.ContextLogger(logger))
	{
		skills.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "skill", "read"),
			handler.GetAll,
		)

		skills.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "skill", "create"),
			handler.Create,
		)

		skills.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "skill", "delete"),
			handler.Delete,
		)
	}

	employeeSkills := r.Group("/employees/:id/skills")
	employeeSkills.Use(middleware.AuthMiddleware())
	employeeSkills.Use(middleware.ContextLogger(logger))
	{
		employeeSkills.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetEmployeeSkills,
		)

		employeeSkills.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.SetEmployeeSkills,
		)
	}
}
