package middlewares

import (
	"github.com/gin-gonic/gin"
)

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// connect-src must allow the layout websocket stream
		c.Header("Content-Security-Policy", "default-src 'self'; connect-src 'self' ws: wss:")

		c.Next()
	}
}
