package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the context key under which the session id is stored.
const SessionIDKey = "session_id"

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "storefront_session"
	// Cookie lifetime in seconds; the cart TTL governs the actual data.
	sessionCookieMaxAge = 60 * 60 * 24 * 30
)

// Session resolves the caller's session id from the X-Session-ID header or
// the session cookie, minting a fresh uuid when neither is present. The
// resolved id is echoed back on both channels so browser and API clients
// can carry it forward. The storefront is anonymous: a session is all the
// identity a cart needs.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set(SessionIDKey, sessionID)
		c.Header(sessionHeader, sessionID)
		c.SetCookie(sessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)

		c.Next()
	}
}

// SessionID returns the session id resolved by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
