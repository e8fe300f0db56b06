package middleware

import (
	"net/http"

	"salonadmin/config"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionMiddleware makes sure every request carries a signed session cookie
// and exposes its id under utils.CtxSessionID.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(utils.SessionCookieName); err == nil && token != "" {
			if sessionID, err := utils.ExtractSessionID(token); err == nil {
				c.Set(utils.CtxSessionID, sessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.New().String()
		ttl := config.SessionTTL()
		token, err := utils.GenerateSessionToken(sessionID, ttl)
		if err != nil {
			zap.L().Error("Failed to sign session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(utils.SessionCookieName, token, int(ttl.Seconds()), "/", "", config.IsProduction(), true)
		c.Set(utils.CtxSessionID, sessionID)
		c.Next()
	}
}

// SessionID returns the id set by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(utils.CtxSessionID)
}
