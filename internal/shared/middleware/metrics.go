package middleware

import (
	"strconv"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template (e.g. /api/members/:id)
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
