package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the session identifier across round-trips for
	// API clients
	SessionHeader = "X-Session-ID"
	// SessionCookie is the fallback carrier for browser clients
	SessionCookie = "taco_session"

	contextKey = "sessionID"
)

// SessionID is a middleware that establishes the caller's session identity.
// It reads the X-Session-ID header (or the session cookie), mints a fresh
// UUID when neither is present, and echoes the identifier back so the client
// can carry it through the multi-step order flow.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, 0, "/", "", false, true)
		}

		c.Set(contextKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session identifier established by SessionID.
func GetSessionID(c *gin.Context) string {
	return c.GetString(contextKey)
}
