package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "cart_session"
	sessionContextKey = "session_id"

	// Cookie lifetime of 30 days; the cart slot itself has no expiry
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// SessionMiddleware resolves the caller's cart session, minting a new one on
// first contact. The session ID names the durable cart slot, playing the role
// the browser's local storage key plays in the frontend.
func SessionMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
			logger.Debug("Minted cart session", zap.String("session_id", sessionID))
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionFromContext retrieves the session ID set by SessionMiddleware
func GetSessionFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return "", false
	}

	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		return "", false
	}

	return sessionID, true
}
