package server

import (
	"github.com/gin-gonic/gin"

	"github.com/trendforge/trendforge-backend/internal/http/handlers"
	"github.com/trendforge/trendforge-backend/internal/http/middleware"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *middleware.AuthMiddleware
	HealthHandler  *handlers.HealthHandler
	TrendHandler   *handlers.TrendHandler
	ContentHandler *handlers.ContentHandler
	UserHandler    *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Public
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	// Trends
	api.GET("/trends", cfg.TrendHandler.List)
	api.GET("/trends/:niche", cfg.TrendHandler.ByNiche)

	// Content
	api.GET("/content", cfg.ContentHandler.List)
	api.GET("/content/:id", cfg.ContentHandler.Get)
	api.POST("/content/generate", cfg.ContentHandler.Generate)
	api.PUT("/content/:id", cfg.ContentHandler.Update)
	api.DELETE("/content/:id", cfg.ContentHandler.Delete)

	// User
	api.GET("/user", cfg.UserHandler.GetMe)
	api.PUT("/user", cfg.UserHandler.UpdateProfile)

	return router
}
