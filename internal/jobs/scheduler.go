package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/trendforge/trendforge-backend/internal/pkg/envutil"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
	"github.com/trendforge/trendforge-backend/internal/services"
)

// Scheduler runs the recurring maintenance jobs: trend refresh and the
// free-tier archival sweep.
type Scheduler struct {
	log     *logger.Logger
	cron    *cron.Cron
	ingest  services.TrendIngestService
	archive services.ArchivalService

	ingestSpec  string
	archiveSpec string
}

func NewScheduler(log *logger.Logger, ingest services.TrendIngestService, archive services.ArchivalService) *Scheduler {
	schedLog := log.With("service", "Scheduler")
	return &Scheduler{
		log:         schedLog,
		cron:        cron.New(),
		ingest:      ingest,
		archive:     archive,
		ingestSpec:  envutil.GetEnv("TREND_INGEST_CRON", "0 */4 * * *", schedLog),
		archiveSpec: envutil.GetEnv("CONTENT_ARCHIVE_CRON", "0 0 * * *", schedLog),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.ingestSpec, func() {
		s.log.Info("Running scheduled trend ingestion")
		s.ingest.IngestAll(ctx)
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.archiveSpec, func() {
		s.log.Info("Running scheduled content archival")
		if _, err := s.archive.ArchiveExpired(ctx); err != nil {
			s.log.Error("Content archival failed", "error", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Scheduler started", "ingest_spec", s.ingestSpec, "archive_spec", s.archiveSpec)
	return nil
}

func (s *Scheduler) Stop() {
	if s == nil || s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
