package middleware

import (
	"net/http"

	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
	"salonadmin/services/auth"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
)

// AuthStateMiddleware re-derives the session's auth state and stores it under
// utils.CtxAuthState (and utils.CtxAdminID when granted). It never aborts.
func AuthStateMiddleware(checker *auth.Checker, store kvRepo.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		guard := auth.NewGuard(checker, auth.NewSession(SessionID(c), store))
		state := guard.Refresh(c.Request.Context())

		c.Set(utils.CtxAuthState, state)
		if state.Authenticated && state.AdminID != nil {
			c.Set(utils.CtxAdminID, *state.AdminID)
		}
		c.Next()
	}
}

// RequireAdminMiddleware rejects requests whose session is not an allow-listed admin.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AuthState(c).Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Next()
	}
}

// AuthState returns the state stored by AuthStateMiddleware.
func AuthState(c *gin.Context) models.AuthState {
	if v, ok := c.Get(utils.CtxAuthState); ok {
		if state, ok := v.(models.AuthState); ok {
			return state
		}
	}
	return models.AuthState{}
}

// AdminID returns the authenticated admin's id, or 0.
func AdminID(c *gin.Context) int64 {
	return c.GetInt64(utils.CtxAdminID)
}

// RequirePanelAdminMiddleware sends non-admins back to the login view instead of answering 401.
func RequirePanelAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !AuthState(c).Authenticated {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
