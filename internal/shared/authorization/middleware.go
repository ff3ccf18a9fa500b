package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return RequireCapability(CapUserManage)
}

// RequireCapability aborts with 403 when the authenticated role lacks the
// capability. It never includes resource data in the response.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !HasCapability(role, cap) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
