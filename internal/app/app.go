package app

import (
	"os"

	"github.com/mskim5976-cpu/hr-ai-system/internal/middleware"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and mounts every module's routes on
// the given router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())

	router.GET("/", func(c *gin.Context) {
		c.String(200, "hr-ai-system up")
	})

	return registerModules(router, gormDB, redisClient, logger)
}
