package services

import (
	"context"
	"time"

	contentrepo "github.com/trendforge/trendforge-backend/internal/data/repos/content"
	"github.com/trendforge/trendforge-backend/internal/pkg/envutil"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

// ArchivalService expires free-tier content: active content older than the
// retention window is archived in one bulk sweep.
type ArchivalService interface {
	ArchiveExpired(ctx context.Context) (int64, error)
}

type archivalService struct {
	log           *logger.Logger
	contentRepo   contentrepo.ContentRepo
	retentionDays int
}

func NewArchivalService(log *logger.Logger, contentRepo contentrepo.ContentRepo) ArchivalService {
	serviceLog := log.With("service", "ArchivalService")
	return &archivalService{
		log:           serviceLog,
		contentRepo:   contentRepo,
		retentionDays: envutil.GetEnvAsInt("FREE_CONTENT_RETENTION_DAYS", 7, serviceLog),
	}
}

func (s *archivalService) ArchiveExpired(ctx context.Context) (int64, error) {
	now := time.Now()
	cutoff := now.Add(-time.Duration(s.retentionDays) * 24 * time.Hour)

	archived, err := s.contentRepo.ArchiveExpiredForFreeUsers(ctx, nil, cutoff, now)
	if err != nil {
		return 0, err
	}

	s.log.Info("Archived expired free-tier content", "count", archived, "cutoff", cutoff)
	return archived, nil
}
