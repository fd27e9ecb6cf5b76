package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/response"
)

// Recovery returns a middleware that recovers from panics, logs them and answers 500.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", RequestID(c),
					"stack", string(debug.Stack()),
				)
				response.Internal(c)
			}
		}()

		c.Next()
	}
}
