package services

import (
	"context"
	"sort"
	"time"

	"github.com/trendforge/trendforge-backend/internal/catalog"
	redisclient "github.com/trendforge/trendforge-backend/internal/clients/redis"
	trendrepo "github.com/trendforge/trendforge-backend/internal/data/repos/trend"
	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

const DefaultTrendLimit = 10

// TrendQueryService reads trends for the API surface. Reads never come back
// empty: a miss triggers ingestion, and if the store is still empty the
// catalog is rendered in-process without persistence.
type TrendQueryService interface {
	// ListForNiches lists trends across the given niches (all niches when
	// empty), consulting the cache first, then the store, degrading to the
	// catalog.
	ListForNiches(ctx context.Context, niches []string, sortBy string, limit int) ([]*types.Trend, error)
	// ListByNiche lists trends for one niche, consulting the cache first and
	// ingesting synchronously when the store has nothing for it.
	ListByNiche(ctx context.Context, niche, sortBy string, limit int) ([]*types.Trend, error)
}

type trendQueryService struct {
	log       *logger.Logger
	trendRepo trendrepo.TrendRepo
	ingest    TrendIngestService
	cache     redisclient.TrendCache // nil when redis is not configured
}

func NewTrendQueryService(
	log *logger.Logger,
	trendRepo trendrepo.TrendRepo,
	ingest TrendIngestService,
	cache redisclient.TrendCache,
) TrendQueryService {
	return &trendQueryService{
		log:       log.With("service", "TrendQueryService"),
		trendRepo: trendRepo,
		ingest:    ingest,
		cache:     cache,
	}
}

func normalizeQuery(sortBy string, limit int) (string, int) {
	if sortBy != trendrepo.SortRecent {
		sortBy = trendrepo.SortPopularity
	}
	if limit <= 0 {
		limit = DefaultTrendLimit
	}
	return sortBy, limit
}

// A cold store triggers one full refresh across the default niche set rather
// than a per-niche one; the filtered re-read keeps the response scoped to the
// request.
func (s *trendQueryService) ListForNiches(ctx context.Context, niches []string, sortBy string, limit int) ([]*types.Trend, error) {
	sortBy, limit = normalizeQuery(sortBy, limit)

	if cached, ok := s.cachedForNiches(ctx, niches); ok {
		return sortAndLimit(cached, sortBy, limit), nil
	}

	filter := trendrepo.ListFilter{Niches: niches, Sort: sortBy, Limit: limit}
	trends, err := s.trendRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, err
	}
	if len(trends) > 0 {
		return trends, nil
	}

	// Empty store: refresh everything once, then re-read.
	s.ingest.IngestAll(ctx)

	trends, err = s.trendRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, err
	}
	if len(trends) > 0 {
		return trends, nil
	}

	lookup := niches
	if len(lookup) == 0 {
		lookup = catalog.DefaultNiches
	}
	return renderCatalog(lookup, sortBy, limit), nil
}

func (s *trendQueryService) ListByNiche(ctx context.Context, niche, sortBy string, limit int) ([]*types.Trend, error) {
	sortBy, limit = normalizeQuery(sortBy, limit)

	if cached, ok := s.cachedForNiches(ctx, []string{niche}); ok {
		return sortAndLimit(cached, sortBy, limit), nil
	}

	// The cache holds the full niche list and sort/limit are applied on the
	// way out, so one request's shape never narrows what later requests see.
	filter := trendrepo.ListFilter{Niches: []string{niche}, Sort: sortBy}
	trends, err := s.trendRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, err
	}

	if len(trends) == 0 {
		if err := s.ingest.IngestNiche(ctx, niche); err != nil {
			s.log.Error("Synchronous ingest failed", "niche", niche, "error", err)
		}
		trends, err = s.trendRepo.List(ctx, nil, filter)
		if err != nil {
			return nil, err
		}
	}

	if len(trends) == 0 {
		return renderCatalog([]string{niche}, sortBy, limit), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, niche, trends); err != nil {
			s.log.Warn("Trend cache write failed", "niche", niche, "error", err)
		}
	}
	return sortAndLimit(trends, sortBy, limit), nil
}

// cachedForNiches merges the cached lists for the requested niches. Only a
// full hit counts; a missing or failed entry falls through to the store.
func (s *trendQueryService) cachedForNiches(ctx context.Context, niches []string) ([]*types.Trend, bool) {
	if s.cache == nil || len(niches) == 0 {
		return nil, false
	}
	var merged []*types.Trend
	for _, niche := range niches {
		cached, err := s.cache.Get(ctx, niche)
		if err != nil {
			s.log.Warn("Trend cache read failed", "niche", niche, "error", err)
			return nil, false
		}
		if len(cached) == 0 {
			return nil, false
		}
		merged = append(merged, cached...)
	}
	return merged, true
}

// renderCatalog materializes catalog entries as unpersisted trends so the API
// can answer even when both the source and the store are unavailable.
func renderCatalog(niches []string, sortBy string, limit int) []*types.Trend {
	now := time.Now()
	var out []*types.Trend
	for _, niche := range niches {
		for _, cand := range catalog.ForNiche(niche) {
			out = append(out, cand.ToTrend(niche, types.TrendSourceMock, now))
		}
	}
	return sortAndLimit(out, sortBy, limit)
}

func sortAndLimit(trends []*types.Trend, sortBy string, limit int) []*types.Trend {
	if sortBy == trendrepo.SortRecent {
		sort.SliceStable(trends, func(i, j int) bool {
			return trends[i].FetchedAt.After(trends[j].FetchedAt)
		})
	} else {
		sort.SliceStable(trends, func(i, j int) bool {
			return trends[i].PopularityScore > trends[j].PopularityScore
		})
	}
	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
