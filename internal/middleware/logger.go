package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request after it has been served.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s %d %s %s",
			c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(started), c.ClientIP())
	}
}
