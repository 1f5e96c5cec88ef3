package middleware

import (
	"strconv"
	"time"

	"partypilot/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and durations for every route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		if metrics.HTTPRequestsTotal != nil {
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		}
		if metrics.HTTPRequestDuration != nil {
			metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)
		}
	}
}
