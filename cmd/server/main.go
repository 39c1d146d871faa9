package main

import (
	"log"
	"os"

	"teamops-backend/internal/api/routes"
	"teamops-backend/internal/config"
	"teamops-backend/internal/database"
	applogger "teamops-backend/internal/logger"
	"teamops-backend/internal/repository"
	"teamops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "teamops-backend/docs" // This is needed for swag
)

//	@title			TeamOps Backend API
//	@version		1.0
//	@description	Backend API for the TeamOps dashboard: roster, attendance sessions, work logs, announcements, derived metrics and generative insights.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Prime a fresh installation with synthetic history
	if cfg.SeedOnEmpty {
		seedService := service.NewSeedService(
			repository.NewMemberRepository(db),
			repository.NewAttendanceRepository(db),
			repository.NewWorkLogRepository(db),
			cfg,
			applogger.New(),
		)
		if _, err := seedService.SeedIfEmpty(); err != nil {
			logrus.Fatal("Failed to seed synthetic history:", err)
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
