package salary

import (
	"dayflow/internal/authz"
	"dayflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authzService authz.Service,
	logger *zap.Logger,
) {
	// Shares the employee subtree's :id wildcard; gin panics at registration
	// if two routes name the same path segment differently.
	salaries := r.Group("/employees/:id/salary")
	salaries.Use(middleware.AuthMiddleware())
	salaries.Use(middleware.ContextLogger(logger))
	{
		salaries.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "salary", "read"),
			handler.GetCurrent,
		)

		salaries.GET("/history",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "salary", "read"),
			handler.GetHistory,
		)

		salaries.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "salary", "create"),
			handler.Create,
		)

		salaries.PATCH("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "salary", "update"),
			handler.Patch,
		)
	}
}
