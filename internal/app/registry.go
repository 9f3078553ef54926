package app

import (
	"os"
	"path/filepath"

	"dayflow/internal/attendance"
	"dayflow/internal/auth"
	"dayflow/internal/authz"
	"dayflow/internal/employee"
	"dayflow/internal/leave"
	"dayflow/internal/messaging/kafka"
	"dayflow/internal/payroll"
	"dayflow/internal/salary"
	"dayflow/internal/shared/counter"

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
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Authorization ---
	authzService, err := authz.NewService(
		authzPath("AUTHZ_MODEL_PATH", filepath.Join("internal", "authz", "model.conf")),
		authzPath("AUTHZ_POLICY_PATH", filepath.Join("internal", "authz", "policy.csv")),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(employeeRepo, logger)
	salaryService := salary.NewService(salaryRepo, logger)
	attendanceService := attendance.NewService(attendanceRepo, logger)
	leaveService := leave.NewService(gormDB, leaveRepo, attendanceRepo, outboxRepo, logger)
	// The leave service doubles as the balance seeder for new hires.
	employeeService := employee.NewService(gormDB, employeeRepo, counterRepo, leaveService, outboxRepo, logger)
	payrollService := payroll.NewService(gormDB, payrollRepo, employeeRepo, salaryRepo, attendanceRepo, outboxRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb, logger)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, authzService, logger)
		salary.RegisterRoutes(api, salaryHandler, authzService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, logger)
		leave.RegisterRoutes(api, leaveHandler, authzService, logger)
		payroll.RegisterRoutes(api, payrollHandler, authzService, rdb, logger)
	}

	return nil
}

func authzPath(envKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return fallback
}
