package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

// RequireRole is the single role gate. Routes declare their required role
// at registration; handlers never check roles themselves.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentUser(c)
		if !ok {
			abort(c, utils.AuthenticationError("Not authorized"))
			return
		}
		if identity.Role != required {
			abort(c, utils.AuthorizationError("Not authorized for this resource"))
			return
		}
		c.Next()
	}
}
