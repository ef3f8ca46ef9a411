package middleware

import (
	"strconv"
	"time"

	"homeinsight-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware labels by route template so /api/image/:key stays one series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(duration)
	}
}
