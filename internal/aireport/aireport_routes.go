package aireport

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/middleware"
	"github.com/mskim5976-cpu/hr-ai-system/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	reports := r.Group("/ai-reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "ai_report", "read"),
			handler.List,
		)

		// Generation routes hit a paid upstream, so they are throttled hard
		// and guarded against double submits.
		reports.POST("/status-report",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "ai_report", "create"),
			middleware.Idempotency(rdb),
			handler.GenerateStatusReport,
		)

		reports.POST("/resume-summary",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "ai_report", "create"),
			middleware.Idempotency(rdb),
			handler.SummarizeResume,
		)
	}

	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("/:id/ai-comment",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "ai_report", "create"),
			middleware.Idempotency(rdb),
			handler.GenerateEmployeeComment,
		)
	}
}
