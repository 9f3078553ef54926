package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authzService, "employee", "read_all"),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authzService, "employee", "create"),
			handler.Create,
		)

		// Self-service profile edits are allowed; the service rejects
		// restricted fields for non-admin callers.
		employees.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
	}
}
