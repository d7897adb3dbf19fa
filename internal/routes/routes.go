package routes

import (
	"path/filepath"

	"threadhub_backend/internal/config"
	"threadhub_backend/internal/handlers"
	"threadhub_backend/internal/middleware"
	"threadhub_backend/internal/models"
	"threadhub_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes of the application.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	userRepo repositories.UserRepository,
	cfg *config.Config,
) {
	authn := middleware.AuthMiddleware(userRepo, cfg)
	requireUser := middleware.RequireRoles(models.UserRoleUser)
	requireAdmin := middleware.RequireRoles(models.UserRoleAdmin)
	requireActive := middleware.RequireActive()

	api := router.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		appHandlers.ThreadHandler.RegisterRoutes(api, authn, requireUser, requireActive)

		admin := api.Group("/admin")
		admin.Use(authn, requireAdmin)
		appHandlers.UserHandler.RegisterRoutes(admin)
	}

	// Uploaded images are served straight off disk for the local backend;
	// the s3 backend returns absolute URLs and never hits this route.
	if cfg.Storage.Type == "local" {
		router.Static("/uploads", filepath.Join(cfg.Storage.BasePath, "uploads"))
	}
}
