package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		leaves.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		leaves.POST("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "leave", "review"),
			handler.Review,
		)
	}

	types := r.Group("/leave-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.RateLimitByUser(3, 10), handler.GetTypes)
	}

	balances := r.Group("/leave-balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("", middleware.RateLimitByUser(3, 10), handler.GetBalances)
	}
}
