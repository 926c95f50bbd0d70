package routes

import (
	"gigboard_backend/internal/config"
	"gigboard_backend/internal/handlers"
	"gigboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with the full middleware chain and every
// API route mounted under /api.
func SetupRouter(cfg *config.Config, db *gorm.DB, appHandlers *handlers.AppHandlers) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	// Uploaded resumes and ad media are served straight off disk.
	router.Static(cfg.Upload.BaseURL, cfg.Upload.BasePath)

	api := router.Group("/api")
	{
		appHandlers.Health.RegisterRoutes(api)
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Worker.RegisterRoutes(api)
		appHandlers.Job.RegisterRoutes(api)
		appHandlers.Application.RegisterRoutes(api)
		appHandlers.Message.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Advertisement.RegisterRoutes(api)
		appHandlers.Stats.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
	}

	return router
}
