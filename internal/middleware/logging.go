package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"nychousing-insights/pkg/logger"
)

// LoggingMiddleware logs one line per request: method, request URI, status,
// latency, client IP and the X-Cache verdict when a view set one.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		uri := c.Request.URL.RequestURI()
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if verdict := c.Writer.Header().Get("X-Cache"); verdict != "" {
			logger.GlobalLogger.Printf("%s %s %d %v ip=%s cache=%s",
				method, uri, status, latency, c.ClientIP(), verdict)
			return
		}
		logger.GlobalLogger.Printf("%s %s %d %v ip=%s",
			method, uri, status, latency, c.ClientIP())
	}
}
