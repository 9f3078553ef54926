package attendance

import (
	"dayflow/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	attendances.Use(middleware.ContextLogger(logger))
	{
		// The list endpoint is open to all roles; the service narrows
		// regular employees to their own rows.
		attendances.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		attendances.POST("",
			middleware.RateLimitByUser(1, 3),
			handler.Clock,
		)
	}
}
