package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "shop_session"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// SessionMiddleware identifies the anonymous shopper. A first visit mints a
// session id and sets it as a cookie; every request after that carries the
// same id, which scopes the cart, wishlist and order history.
func SessionMiddleware() gin.HandlerFunc {
	secure := os.Getenv("COOKIE_SECURE") == "true"

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", secure, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
