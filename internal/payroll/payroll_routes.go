package payroll

import (
	"dayflow/internal/authz"
	"dayflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authzService authz.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		generate := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.2, 2),
			middleware.Authorize(authzService, "payroll", "generate"),
		}
		if rdb != nil {
			generate = append(generate, middleware.Idempotency(rdb))
		}
		payrolls.POST("", append(generate, handler.Generate)...)

		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "payroll", "read"),
			handler.List,
		)

		payrolls.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "payroll", "read"),
			handler.Get,
		)
	}
}
