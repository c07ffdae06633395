package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

// accountIDKey is the key used to store the authenticated account's ID in the
// request context. Using a custom type prevents collisions.
const accountIDKey = contextKey("accountID")

// accountRoleKey stores the authenticated account's platform role.
const accountRoleKey = contextKey("accountRole")

// churchCtxKey stores the resolved church access for church-scoped routes.
const churchCtxKey = contextKey("churchContext")

// ChurchContext is the caller's resolved access within the church addressed
// by the request path.
type ChurchContext struct {
	ChurchID string
	Role     domain.ChurchRole
}

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin
// context. It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	accountIDVal := c.Request.Context().Value(accountIDKey)
	if accountIDVal == nil {
		return "", false
	}
	accountID, ok := accountIDVal.(string)
	if !ok {
		return "", false
	}
	return accountID, true
}

// GetAccountRoleFromContext retrieves the authenticated account's platform
// role from the Gin context.
func GetAccountRoleFromContext(c *gin.Context) (domain.AccountRole, bool) {
	roleVal := c.Request.Context().Value(accountRoleKey)
	if roleVal == nil {
		return "", false
	}
	role, ok := roleVal.(domain.AccountRole)
	if !ok {
		return "", false
	}
	return role, true
}

// GetChurchContext retrieves the resolved church access set by ChurchAccess.
func GetChurchContext(c *gin.Context) (ChurchContext, bool) {
	val := c.Request.Context().Value(churchCtxKey)
	if val == nil {
		return ChurchContext{}, false
	}
	cc, ok := val.(ChurchContext)
	if !ok {
		return ChurchContext{}, false
	}
	return cc, true
}
