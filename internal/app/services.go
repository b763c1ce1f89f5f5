package app

import (
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
	"github.com/trendforge/trendforge-backend/internal/services"
)

type Services struct {
	TrendIngest services.TrendIngestService
	TrendQuery  services.TrendQueryService
	Generation  services.ContentGenerationService
	Content     services.ContentService
	Archival    services.ArchivalService
	User        services.UserService
}

func wireServices(log *logger.Logger, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	ingest := services.NewTrendIngestService(log, repos.Trend, clients.YouTube, clients.Cache)
	query := services.NewTrendQueryService(log, repos.Trend, ingest, clients.Cache)
	generation := services.NewContentGenerationService(log, clients.Cohere)
	content := services.NewContentService(log, repos.Content, repos.Trend, repos.User, repos.UserProfile, generation)
	archival := services.NewArchivalService(log, repos.Content)
	user := services.NewUserService(log, repos.User, repos.UserProfile)

	return Services{
		TrendIngest: ingest,
		TrendQuery:  query,
		Generation:  generation,
		Content:     content,
		Archival:    archival,
		User:        user,
	}
}
