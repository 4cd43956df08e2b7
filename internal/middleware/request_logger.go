package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
)

// RequestLogger logs one line per request with method, path, status,
// and latency.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		reqLog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
