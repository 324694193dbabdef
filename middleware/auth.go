package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hotel-master/models"
	"hotel-master/utils"
)

// Session and context keys shared with the controllers.
const (
	SessionAccountID = "account_id"
	SessionRole      = "role"

	CtxAccountID = "currentAccountID"
	CtxRole      = "currentRole"
)

// RequireLogin fails closed: no established session means the request never
// reaches a domain service. On success the account id and role are copied into
// the request context for the handlers.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, role, ok := sessionIdentity(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Set(CtxAccountID, accountID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireAdmin fails closed unless the session role is admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, role, ok := sessionIdentity(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		if role != models.RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Set(CtxAccountID, accountID)
		c.Set(CtxRole, role)
		c.Next()
	}
}

func sessionIdentity(c *gin.Context) (uint, string, bool) {
	session := sessions.Default(c)
	rawID := session.Get(SessionAccountID)
	rawRole := session.Get(SessionRole)
	if rawID == nil || rawRole == nil {
		return 0, "", false
	}
	accountID, okID := rawID.(uint)
	role, okRole := rawRole.(string)
	if !okID || !okRole {
		return 0, "", false
	}
	return accountID, role, true
}

// AccountID reads the account id that RequireLogin / RequireAdmin stored on
// the context.
func AccountID(c *gin.Context) uint {
	if v, ok := c.Get(CtxAccountID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
