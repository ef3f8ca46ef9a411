package middleware

import (
	"time"

	"homeinsight-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		logger.GlobalLogger.Printf("%s %s %d %v request_id=%s", method, path, status, latency, c.GetString(RequestIDKey))
	}
}
