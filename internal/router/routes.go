package router

import (
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/attendance"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/auth"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/dashboard"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/instructor"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/kakao"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/member"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/meta"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/reservation"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/settings"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Services exposes what main needs after routing: admin seeding and the cache refresh job
type Services struct {
	Auth       *auth.AuthService
	Membership *membership.MembershipService
}

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, clock dateutil.Clock) *Services {
	loc := cfg.Location()

	// Meta handler (health check, metrics)
	metaHandler := meta.NewHandler(cfg, db, clock)
	router.GET("/health", metaHandler.Health)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// repository
	adminRepository := auth.NewAdminRepository()
	memberRepository := member.NewMemberRepository()
	membershipRepository := membership.NewMembershipRepository()
	classRepository := class.NewClassRepository()
	instructorRepository := instructor.NewInstructorRepository()
	reservationRepository := reservation.NewReservationRepository()
	kakaoRepository := kakao.NewKakaoRepository()
	settingsRepository := settings.NewSettingsRepository()
	dashboardRepository := dashboard.NewDashboardRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, adminRepository, tokenManager)
	membershipService := membership.NewMembershipService(db.DB, membershipRepository, clock, loc)
	memberService := member.NewMemberService(db.DB, memberRepository, membershipRepository, membershipService)
	classService := class.NewClassService(db.DB, classRepository, clock, loc)
	instructorService := instructor.NewInstructorService(db.DB, instructorRepository)
	kakaoService := kakao.NewKakaoService(db.DB, kakaoRepository, membershipService, clock)
	reservationService := reservation.NewReservationService(db.DB, reservationRepository, classRepository, classService, kakaoService, clock, loc)
	attendanceService := attendance.NewAttendanceService(db.DB, reservationRepository, classRepository, clock)
	settingsService := settings.NewSettingsService(db.DB, settingsRepository)
	dashboardService := dashboard.NewDashboardService(db.DB, dashboardRepository, membershipRepository, classService, clock, loc)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)
	membershipHandler := membership.NewMembershipHandler(membershipService)
	classHandler := class.NewClassHandler(classService)
	instructorHandler := instructor.NewInstructorHandler(instructorService)
	kakaoHandler := kakao.NewKakaoHandler(kakaoService)
	reservationHandler := reservation.NewReservationHandler(reservationService)
	attendanceHandler := attendance.NewAttendanceHandler(attendanceService)
	settingsHandler := settings.NewSettingsHandler(settingsService)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)

	// 챗봇 연동 API (인증 없음)
	reservationAPI := router.Group("/api/reservation")
	{
		reservationAPI.POST("", reservationHandler.Book)
		reservationAPI.POST("/cancel", reservationHandler.Cancel)
		reservationAPI.GET("/classes", reservationHandler.AvailableClasses)
		reservationAPI.GET("/my", reservationHandler.MyReservations)
	}

	memberAPI := router.Group("/api/member")
	{
		memberAPI.POST("/auth", kakaoHandler.Auth)
		memberAPI.POST("/link", kakaoHandler.Link)
		memberAPI.GET("/kakao/:kakao_user_id", kakaoHandler.Lookup)
	}

	router.POST("/api/attendance/update", attendanceHandler.Update)
	router.GET("/api/settings", settingsHandler.Get)
	router.POST("/api/settings", settingsHandler.Save)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/admins", middleware.JWT(cfg), authHandler.CreateAdmin)
	}

	// 관리자 API
	admin := router.Group("/api")
	admin.Use(middleware.JWT(cfg))
	{
		admin.GET("/members", memberHandler.List)
		admin.GET("/members/:id", memberHandler.Get)
		admin.POST("/members", memberHandler.Create)
		admin.PUT("/members/:id", memberHandler.Update)
		admin.DELETE("/members/:id", memberHandler.Delete)

		admin.GET("/members/:id/memberships", membershipHandler.ListByMember)
		admin.POST("/members/:id/memberships", membershipHandler.Purchase)
		admin.PATCH("/memberships/:id", membershipHandler.Adjust)

		admin.GET("/classes", classHandler.List)
		admin.GET("/classes/:id", classHandler.Get)
		admin.POST("/classes", classHandler.Create)
		admin.PUT("/classes/:id", classHandler.Update)
		admin.DELETE("/classes/:id", classHandler.Delete)
		admin.GET("/classes/:id/attendance", attendanceHandler.Roster)

		admin.GET("/instructors", instructorHandler.List)
		admin.POST("/instructors", instructorHandler.Create)
		admin.PUT("/instructors/:id", instructorHandler.Update)
		admin.DELETE("/instructors/:id", instructorHandler.Delete)

		admin.GET("/dashboard/summary", dashboardHandler.Summary)
		admin.GET("/dashboard/settlement", dashboardHandler.Settlement)
		admin.GET("/dashboard/settlement/export", dashboardHandler.Export)
	}

	return &Services{
		Auth:       authService,
		Membership: membershipService,
	}
}
