package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/binzaridot/binzari-backend/config"
	"github.com/binzaridot/binzari-backend/internal/app/controller"
	"github.com/binzaridot/binzari-backend/internal/app/repository"
	"github.com/binzaridot/binzari-backend/internal/app/service"
	"github.com/binzaridot/binzari-backend/internal/db"
	"github.com/binzaridot/binzari-backend/internal/middleware"
	"github.com/binzaridot/binzari-backend/internal/router"
	"github.com/binzaridot/binzari-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting BINZARI Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	database, err := db.Initialize(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Upload directories must exist before gin serves or saves into them
	for _, dir := range []string{cfg.Upload.UsersDir, cfg.Upload.PartnersDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("Failed to create upload directory", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	collegeAuthRepo := repository.NewCollegeAuthRepository(database)
	storeRepo := repository.NewStoreRepository(database)
	partnerRepo := repository.NewPartnerRepository(database)
	partnershipRepo := repository.NewPartnershipRepository(database)
	adminRepo := repository.NewAdminRepository(database)
	userLogRepo := repository.NewUserLogRepository(database)

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		partnerRepo,
		collegeAuthRepo,
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	adminService := service.NewAdminService(adminRepo, cfg.JWT.AccessSecret, cfg.JWT.AdminTokenExpiry)
	mapService := service.NewMapService(userRepo, partnershipRepo, userLogRepo)
	collegeAuthService := service.NewCollegeAuthService(collegeAuthRepo, userRepo, cfg.Upload.UsersDir)
	storeService := service.NewStoreService(storeRepo)
	partnerService := service.NewPartnerService(partnerRepo)
	partnershipService := service.NewPartnershipService(partnershipRepo)
	dashboardService := service.NewDashboardService(userRepo, collegeAuthRepo, storeRepo, partnerRepo, partnershipRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	mapController := controller.NewMapController(mapService)
	collegeAuthController := controller.NewCollegeAuthController(collegeAuthService)
	dashboardController := controller.NewDashboardController(adminService, dashboardService)
	storeController := controller.NewStoreController(storeService)
	partnerController := controller.NewPartnerController(partnerService)
	partnershipController := controller.NewPartnershipController(partnershipService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)
	uploadMiddleware := middleware.NewUploadMiddleware(cfg.Server.BaseURL, cfg.Upload.UsersDir, cfg.Upload.PartnersDir)

	// Setup router
	r := router.NewRouter(
		authController,
		mapController,
		collegeAuthController,
		dashboardController,
		storeController,
		partnerController,
		partnershipController,
		authMiddleware,
		uploadMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
