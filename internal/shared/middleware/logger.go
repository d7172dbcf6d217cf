package middleware

import (
	"log/slog"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// quietRoutes are polled by load balancers and Prometheus; they are logged at debug level
var quietRoutes = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// LoggerMiddleware returns a gin middleware for structured logging with slog
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Store logger in context for use in handlers/services/repositories
		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}
		if raw != "" {
			fields = append(fields, "query", raw)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		// JWT 미들웨어가 admin_id를 붙였다면 그 로거를 사용
		log := logger.FromContext(c.Request.Context())
		const msg = "Request processed"

		switch {
		case status >= 500:
			log.Error(msg, fields...)
		case status >= 400:
			log.Warn(msg, fields...)
		case quietRoutes[path]:
			log.Debug(msg, fields...)
		default:
			log.Info(msg, fields...)
		}
	}
}
