package app

import (
	"github.com/trendforge/trendforge-backend/internal/clients/cohere"
	redisclient "github.com/trendforge/trendforge-backend/internal/clients/redis"
	"github.com/trendforge/trendforge-backend/internal/clients/youtube"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

type Clients struct {
	YouTube youtube.Client
	Cohere  cohere.Client
	Cache   redisclient.TrendCache
}

// wireClients initializes the optional external clients. Each one degrades
// gracefully when unconfigured: trends fall back to the catalog, generation
// to the deterministic defaults, reads skip the cache.
func wireClients(log *logger.Logger) Clients {
	log.Info("Wiring clients...")
	var clients Clients

	yt, err := youtube.NewClient(log)
	if err != nil {
		log.Warn("YouTube client unavailable, trend ingestion will use the catalog", "error", err)
	} else {
		clients.YouTube = yt
	}

	ai, err := cohere.NewClient(log)
	if err != nil {
		log.Warn("Cohere client unavailable, generation will use defaults", "error", err)
	} else {
		clients.Cohere = ai
	}

	cache, err := redisclient.NewTrendCache(log)
	if err != nil {
		log.Warn("Trend cache unavailable, reads will go to the store", "error", err)
	} else {
		clients.Cache = cache
	}

	return clients
}
