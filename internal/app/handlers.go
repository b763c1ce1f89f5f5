package app

import (
	"github.com/trendforge/trendforge-backend/internal/http/handlers"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Trend   *handlers.TrendHandler
	Content *handlers.ContentHandler
	User    *handlers.UserHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		Trend:   handlers.NewTrendHandler(services.TrendQuery, services.User),
		Content: handlers.NewContentHandler(services.Content),
		User:    handlers.NewUserHandler(services.User),
	}
}
