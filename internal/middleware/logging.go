package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-service/internal/logger"
)

// Logging attaches the service logger to every request context and
// records one line per request on the way out.
func Logging(l *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.ToContext(c.Request.Context(), l)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		logger.Infof(ctx, "request: method: %s; url: %s; status: %d; processing time: %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}
