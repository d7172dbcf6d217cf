package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/auth"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap handles engine setup and the background pieces started next to the HTTP server
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	if b.cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// SeedAdmin creates the configured first admin when no admin exists yet
func (b *Bootstrap) SeedAdmin(ctx context.Context, authService *auth.AuthService) error {
	seeded, err := authService.SeedAdmin(ctx, b.cfg.Admin)
	if err != nil {
		return fmt.Errorf("초기 관리자 생성 실패: %w", err)
	}
	if !seeded && b.cfg.Admin.Email == "" {
		slog.Info("ADMIN_EMAIL 미설정 - 초기 관리자 생성 건너뜀")
	}
	return nil
}

// StartScheduler starts the nightly membership cache refresh. It returns nil when disabled.
func (b *Bootstrap) StartScheduler(membershipService *membership.MembershipService) (*membership.RefreshJob, error) {
	if !b.cfg.Scheduler.Enabled {
		slog.Info("스케줄러 비활성화")
		return nil, nil
	}

	job, err := membership.NewRefreshJob(membershipService, b.cfg.Scheduler.MembershipRefreshCron, b.cfg.Location())
	if err != nil {
		return nil, fmt.Errorf("회원권 갱신 작업 등록 실패: %w", err)
	}
	job.Start()

	slog.Info("스케줄러 시작",
		"membership_refresh_cron", b.cfg.Scheduler.MembershipRefreshCron,
		"timezone", b.cfg.App.Timezone,
	)
	return job, nil
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("Panic Recovered",
		"error", fmt.Sprint(recovered),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
