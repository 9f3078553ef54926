package middleware

import (
	"net/http"

	"dayflow/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AuthzService is a local interface; any package with a
// Can(role, resource, action) method satisfies it.
type AuthzService interface {
	Can(role, resource, action string) (bool, error)
}

// Authorize gates a route on the caller's role. It runs once at the
// operation boundary so handlers and services never re-check roles.
func Authorize(service AuthzService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Can(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action)
			c.Abort()
			return
		}
		c.Next()
	}
}
