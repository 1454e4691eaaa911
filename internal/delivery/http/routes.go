package http

import (
	"github.com/RikuXan/mymuesli-analyzer/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		readymixes := v1.Group("/readymixes")
		{
			readymixes.GET("", handler.ListReadyMixes)
			readymixes.GET("/report", handler.Report)
		}
	}

	return router
}
