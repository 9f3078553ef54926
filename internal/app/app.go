package app

import (
	"os"

	"dayflow/internal/middleware"
	"dayflow/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module's routes
// on the given router. Redis is optional: without REDIS_ADDR the payroll
// endpoint simply runs without idempotency replay.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Warn("redis unavailable, idempotency replay disabled", zap.Error(err))
		rdb = nil
	} else {
		logger.Info("redis connection established")
	}

	router.Use(middleware.RequestID())

	return registerModules(router, gormDB, rdb, logger)
}
