package middleware

import (
	"context"
	"net/http"
	"time"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

var requestTimeout = sharedError.ErrorResponse{
	Status:  http.StatusServiceUnavailable,
	Code:    "ERROR-005",
	Message: "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해 주세요.",
}

// Timeout attaches a deadline to the request context.
// Repositories pass the context to GORM, so queries are cancelled once it expires.
// A handler that returns after the deadline without writing gets a 503 envelope.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() != context.DeadlineExceeded {
			return
		}

		logger.FromContext(c.Request.Context()).Warn("요청 처리 시간 초과",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"status", c.Writer.Status(),
		)
		if !c.Writer.Written() {
			c.AbortWithStatusJSON(requestTimeout.Status, requestTimeout)
		}
	}
}
