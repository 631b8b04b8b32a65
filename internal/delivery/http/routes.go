package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pricescout/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Test form and health check
	router.GET("/", handler.Index)
	router.GET("/health", handler.HealthCheck)

	// Legacy-style top-level endpoints
	router.GET("/search-and-redirect", handler.SearchAndRedirect)
	router.GET("/process-excel", handler.ProcessExcel)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/search", handler.Search)
		v1.GET("/price", handler.Price)
		v1.POST("/batch", handler.BatchUpload)
	}

	return router
}
