package app

import (
	"context"
	"fmt"
	"time"

	"threadhub_backend/internal/config"
	"threadhub_backend/internal/handlers"
	"threadhub_backend/internal/logger"
	"threadhub_backend/internal/middleware"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"
	"threadhub_backend/internal/routes"
	"threadhub_backend/internal/services"
	"threadhub_backend/internal/storage"
	"threadhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the application: config, logging, database, storage, HTTP.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.Thread{}); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Tests call it directly with their own config and database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	userRepo := repositories.NewUserRepository(gormDB)
	threadRepo := repositories.NewThreadRepository(gormDB)

	customValidator := validator.New()
	attachmentService := services.NewAttachmentService(storageInstance)
	authService := services.NewAuthService(userRepo, customValidator, cfg)
	threadService := services.NewThreadService(threadRepo, attachmentService)
	userService := services.NewUserService(userRepo)

	baseHandler := handlers.NewBaseHandler(customValidator, cfg.Upload.MaxSize)
	appHandlers := &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, authService),
		ThreadHandler: handlers.NewThreadHandler(baseHandler, threadService),
		UserHandler:   handlers.NewUserHandler(baseHandler, userService),
	}

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, userRepo, cfg)

	return router
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
