package middleware

import (
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger attaches a request-scoped logger to the Gin context so
// handlers can log with the request ID, method and path already bound. The
// request ID is echoed back in the X-Request-ID header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		logger := utils.GetLogger().With(
			zap.String("requestId", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Set("logger", logger)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
