package middleware

import (
	"go-attendo/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request scoped logger carrying the request id and,
// after AuthMiddleware, the caller's employee id and role.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := []zap.Field{zap.String("request_id", c.GetString("request_id"))}
		if id := c.GetString("employee_id"); id != "" {
			fields = append(fields,
				zap.String("employee_id", id),
				zap.String("role", c.GetString("role")),
			)
		}

		ctx := contextutil.WithLogger(c.Request.Context(), logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
