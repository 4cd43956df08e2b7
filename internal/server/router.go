package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/handlers"
	"github.com/yungbote/realista-backend/internal/middleware"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log                  *logger.Logger
	OwnerHandler         *handlers.OwnerHandler
	PropertyHandler      *handlers.PropertyHandler
	PropertyImageHandler *handlers.PropertyImageHandler
	PropertyTraceHandler *handlers.PropertyTraceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Owners
		api.GET("/owners", cfg.OwnerHandler.List)
		api.GET("/owners/:id", cfg.OwnerHandler.Get)
		api.POST("/owners", cfg.OwnerHandler.Create)
		api.PUT("/owners/:id", cfg.OwnerHandler.Update)
		api.DELETE("/owners/:id", cfg.OwnerHandler.Delete)

		// Properties
		api.GET("/properties", cfg.PropertyHandler.List)
		api.GET("/properties/:id", cfg.PropertyHandler.Get)
		api.POST("/properties", cfg.PropertyHandler.Create)
		api.PUT("/properties/:id", cfg.PropertyHandler.Update)
		api.PATCH("/properties/:id/price", cfg.PropertyHandler.ChangePrice)
		api.DELETE("/properties/:id", cfg.PropertyHandler.Delete)
		api.GET("/properties/:id/images", cfg.PropertyImageHandler.ListByProperty)
		api.GET("/properties/:id/traces", cfg.PropertyTraceHandler.ListByProperty)

		// Property images
		api.GET("/property-images", cfg.PropertyImageHandler.List)
		api.POST("/property-images", cfg.PropertyImageHandler.Create)
		api.PUT("/property-images/:id", cfg.PropertyImageHandler.Update)

		// Property traces
		api.GET("/property-traces/:id", cfg.PropertyTraceHandler.Get)
		api.POST("/property-traces", cfg.PropertyTraceHandler.Create)
	}

	return router
}
