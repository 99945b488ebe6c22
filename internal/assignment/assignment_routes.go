package assignment

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
	assignments := r.Group("/assignments")
	assignments.Use(middleware.AuthMiddleware())
	assignments.Use(middleware.ContextLogger(logger))
	{
		assignments.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.GetAll,
		)

		assignments.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.GetById,
		)

		// Dispatching twice for the same employee must conflict, so the
		// create route additionally carries the idempotency guard.
		assignments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "assignment", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		assignments.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "assignment", "update"),
			handler.Update,
		)

		assignments.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "assignment", "delete"),
			handler.Delete,
		)
	}
}
