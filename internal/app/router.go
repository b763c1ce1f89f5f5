package app

import (
	"github.com/gin-gonic/gin"

	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
	"github.com/trendforge/trendforge-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		HealthHandler:  handlers.Health,
		TrendHandler:   handlers.Trend,
		ContentHandler: handlers.Content,
		UserHandler:    handlers.User,
	})
}
