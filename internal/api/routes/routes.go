package routes

import (
	"time"

	"teamops-backend/internal/api/handlers"
	"teamops-backend/internal/api/middleware"
	"teamops-backend/internal/auth"
	"teamops-backend/internal/config"
	"teamops-backend/internal/logger"
	"teamops-backend/internal/repository"
	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	appLogger := logger.New()

	missionStart, err := cfg.MissionStart()
	if err != nil {
		// Config validation catches this before we get here
		appLogger.WithField("error", err.Error()).Warn("invalid mission start date, defaulting to today")
		missionStart = time.Now()
	}

	// Repositories
	memberRepo := repository.NewMemberRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	// Services
	memberService := service.NewMemberService(memberRepo, validate)
	attendanceService := service.NewAttendanceService(attendanceRepo, memberRepo, validate)
	workLogService := service.NewWorkLogService(workLogRepo, memberRepo, validate)
	announcementService := service.NewAnnouncementService(announcementRepo, memberRepo, validate)
	dashboardService := service.NewDashboardService(memberRepo, attendanceRepo, workLogRepo, missionStart)
	insightService := service.NewInsightService(cfg, appLogger)
	stateService := service.NewStateService(memberRepo, attendanceRepo, workLogRepo, announcementRepo)

	// Auth
	authService := auth.NewAuthService(cfg, memberRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	workLogHandler := handlers.NewWorkLogHandler(workLogService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	insightHandler := handlers.NewInsightHandler(insightService, dashboardService, workLogService, memberService)
	stateHandler := handlers.NewStateHandler(stateService)

	// Public endpoints
	router.GET("/health", healthHandler.Health)
	router.POST("/auth/login", authHandler.Login)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected API
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		members := api.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.GET("/:id/attendance", attendanceHandler.GetHistory)
		}

		attendance := api.Group("/attendance")
		{
			attendance.GET("", attendanceHandler.ListAttendance)
			attendance.POST("/check-in", attendanceHandler.CheckIn)
			attendance.POST("/check-out", attendanceHandler.CheckOut)
			attendance.GET("/today", attendanceHandler.GetToday)
		}

		worklogs := api.Group("/worklogs")
		{
			worklogs.GET("", workLogHandler.ListWorkLogs)
			worklogs.POST("", workLogHandler.CreateWorkLog)
			worklogs.PUT("/:id", workLogHandler.UpdateWorkLog)
			worklogs.PATCH("/:id/toggle", workLogHandler.ToggleWorkLogStatus)
			worklogs.DELETE("/:id", workLogHandler.DeleteWorkLog)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", announcementHandler.ListAnnouncements)
			announcements.POST("", announcementHandler.CreateAnnouncement)
			announcements.PUT("/:id", announcementHandler.UpdateAnnouncement)
			announcements.PATCH("/:id/pin", announcementHandler.TogglePin)
			announcements.POST("/:id/read", announcementHandler.MarkRead)
			announcements.DELETE("/:id", announcementHandler.DeleteAnnouncement)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/me", dashboardHandler.GetPersonalSummary)
			dashboard.GET("/members/:id", dashboardHandler.GetMemberSummary)
			dashboard.GET("/team", dashboardHandler.GetTeamBoard)
		}

		insights := api.Group("/insights")
		{
			insights.GET("/productivity", insightHandler.GetProductivityInsights)
			insights.GET("/me", insightHandler.GetPersonalInsight)
			insights.GET("/weekly-report", insightHandler.GetWeeklyReport)
			insights.POST("/parse-log", insightHandler.ParseWorkLog)
		}

		api.GET("/state", stateHandler.ExportState)
		api.PUT("/state", stateHandler.ImportState)
	}

	return router
}
