package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/gin-gonic/gin"
)

// Handler serves operational endpoints
type Handler struct {
	cfg   *config.Config
	db    *database.DB
	clock dateutil.Clock
}

func NewHandler(cfg *config.Config, db *database.DB, clock dateutil.Clock) *Handler {
	return &Handler{
		cfg:   cfg,
		db:    db,
		clock: clock,
	}
}

// Health checks database connectivity and reports the studio calendar day the service is using
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
		"timezone":    h.cfg.App.Timezone,
		"today":       dateutil.Format(dateutil.Today(h.clock, h.cfg.Location())),
	}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"error":  err.Error(),
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"database": gin.H{
				"status":     "up",
				"driver":     h.cfg.Database.Driver,
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
