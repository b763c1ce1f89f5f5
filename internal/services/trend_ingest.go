package services

import (
	"context"
	"time"

	"github.com/trendforge/trendforge-backend/internal/catalog"
	redisclient "github.com/trendforge/trendforge-backend/internal/clients/redis"
	"github.com/trendforge/trendforge-backend/internal/clients/youtube"
	trendrepo "github.com/trendforge/trendforge-backend/internal/data/repos/trend"
	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

// TrendIngestService refreshes the trend store from the external source,
// falling back to the built-in catalog when the source is unavailable.
type TrendIngestService interface {
	IngestNiche(ctx context.Context, niche string) error
	// IngestAll refreshes every default niche; per-niche failures are logged
	// and skipped so one bad niche never blocks the rest.
	IngestAll(ctx context.Context)
}

type trendIngestService struct {
	log       *logger.Logger
	trendRepo trendrepo.TrendRepo
	source    youtube.Client         // nil when no API key is configured
	cache     redisclient.TrendCache // nil when redis is not configured
}

func NewTrendIngestService(
	log *logger.Logger,
	trendRepo trendrepo.TrendRepo,
	source youtube.Client,
	cache redisclient.TrendCache,
) TrendIngestService {
	return &trendIngestService{
		log:       log.With("service", "TrendIngestService"),
		trendRepo: trendRepo,
		source:    source,
		cache:     cache,
	}
}

func (s *trendIngestService) IngestNiche(ctx context.Context, niche string) error {
	candidates, source := s.fetchCandidates(ctx, niche)

	fetchedAt := time.Now()
	for _, cand := range candidates {
		t := cand.ToTrend(niche, source, fetchedAt)
		if err := s.trendRepo.Upsert(ctx, nil, t); err != nil {
			return err
		}
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, niche); err != nil {
			s.log.Warn("Failed to invalidate trend cache", "niche", niche, "error", err)
		}
	}

	s.log.Info("Ingested trends", "niche", niche, "count", len(candidates), "source", source)
	return nil
}

func (s *trendIngestService) IngestAll(ctx context.Context) {
	for _, niche := range catalog.DefaultNiches {
		if err := s.IngestNiche(ctx, niche); err != nil {
			s.log.Error("Failed to ingest niche", "niche", niche, "error", err)
		}
	}
}

// fetchCandidates asks the external source first; any failure or empty result
// degrades to the catalog so ingestion always has something to write.
func (s *trendIngestService) fetchCandidates(ctx context.Context, niche string) ([]types.TrendCandidate, string) {
	if s.source != nil {
		candidates, err := s.source.FetchTrends(ctx, niche)
		if err == nil && len(candidates) > 0 {
			return candidates, types.TrendSourceYouTube
		}
		if err != nil {
			s.log.Warn("Trend source failed, using catalog", "niche", niche, "error", err)
		}
	}
	return catalog.ForNiche(niche), types.TrendSourceMock
}
