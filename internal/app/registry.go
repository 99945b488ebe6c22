package app

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/aireport"
	"github.com/mskim5976-cpu/hr-ai-system/internal/assignment"
	"github.com/mskim5976-cpu/hr-ai-system/internal/auth"
	"github.com/mskim5976-cpu/hr-ai-system/internal/department"
	"github.com/mskim5976-cpu/hr-ai-system/internal/employee"
	"github.com/mskim5976-cpu/hr-ai-system/internal/llm"
	"github.com/mskim5976-cpu/hr-ai-system/internal/messaging/kafka"
	"github.com/mskim5976-cpu/hr-ai-system/internal/rbac"
	"github.com/mskim5976-cpu/hr-ai-system/internal/server"
	"github.com/mskim5976-cpu/hr-ai-system/internal/site"
	"github.com/mskim5976-cpu/hr-ai-system/internal/skill"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	siteRepo := site.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)
	skillRepo := skill.NewRepository(gormDB)
	serverRepo := server.NewRepository(gormDB)
	reportRepo := aireport.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(gormDB, departmentRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, assignmentRepo, outboxRepo, rdb)
	siteService := site.NewService(siteRepo)
	assignmentService := assignment.NewServiceWithOutbox(gormDB, assignmentRepo, employeeRepo, siteRepo, outboxRepo)
	skillService := skill.NewService(skillRepo, employeeRepo)
	serverService := server.NewService(serverRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	siteHandler := site.NewHandler(siteService)
	assignmentHandler := assignment.NewHandler(assignmentService)
	skillHandler := skill.NewHandler(skillService)
	serverHandler := server.NewHandler(serverService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		site.RegisterRoutes(api, siteHandler, rbacService, logger)
		assignment.RegisterRoutes(api, assignmentHandler, rbacService, rdb, logger)
		skill.RegisterRoutes(api, skillHandler, rbacService, logger)
		server.RegisterRoutes(api, serverHandler, rbacService, logger)
	}

	// Text generation needs upstream credentials; the rest of the API stays
	// usable without them.
	llmClient, err := llm.NewClient()
	if err != nil {
		logger.Warn("llm client unavailable, ai report routes disabled", zap.Error(err))
		return nil
	}

	reportService := aireport.NewService(
		reportRepo,
		employeeRepo,
		siteRepo,
		assignmentRepo,
		llmClient,
		llmClient.ModelName(),
	)
	reportHandler := aireport.NewHandler(reportService)
	aireport.RegisterRoutes(api, reportHandler, rbacService, rdb, logger)

	return nil
}
