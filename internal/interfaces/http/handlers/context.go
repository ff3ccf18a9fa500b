package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/quickdesk-io/quickdesk/internal/shared/authorization"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
	"github.com/quickdesk-io/quickdesk/internal/shared/errors"
)

// CurrentUser pulls the authenticated caller's identity that the auth
// middleware stored on the request context.
func CurrentUser(c *gin.Context) (uint, authorization.UserRole, error) {
	raw, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, "", errors.NewUnauthorizedError("user not authenticated")
	}

	userID, ok := raw.(uint)
	if !ok {
		return 0, "", errors.NewInternalError("invalid user identity on request context")
	}

	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return userID, role, nil
}
