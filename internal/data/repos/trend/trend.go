package trend

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"

	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

const (
	SortPopularity = "popularity"
	SortRecent     = "recent"
)

// ListFilter is the explicit filter specification for trend reads: optional
// niche set, sort order and row cap.
type ListFilter struct {
	Niches []string
	Sort   string
	Limit  int
}

type TrendRepo interface {
	// Upsert inserts t or, when a row with the same (title, niche) exists,
	// overwrites its description/keywords/score/source/metadata/fetched_at
	// while preserving the existing id.
	Upsert(ctx context.Context, tx *gorm.DB, t *types.Trend) error
	List(ctx context.Context, tx *gorm.DB, filter ListFilter) ([]*types.Trend, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Trend, error)
}

type trendRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrendRepo(db *gorm.DB, baseLog *logger.Logger) TrendRepo {
	repoLog := baseLog.With("repo", "TrendRepo")
	return &trendRepo{db: db, log: repoLog}
}

func (r *trendRepo) Upsert(ctx context.Context, tx *gorm.DB, t *types.Trend) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// Single transaction per key so a concurrent refresh of the same trend
	// resolves to last-write-wins on whole rows, never interleaved fields.
	return transaction.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		var existing types.Trend
		err := txn.Where("title = ? AND niche = ?", t.Title, t.Niche).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txn.Create(t).Error
		}
		if err != nil {
			return err
		}
		if err := txn.Model(&existing).Updates(map[string]any{
			"description":      t.Description,
			"related_keywords": t.RelatedKeywords,
			"popularity_score": t.PopularityScore,
			"source":           t.Source,
			"metadata":         t.Metadata,
			"fetched_at":       t.FetchedAt,
			"updated_at":       time.Now(),
		}).Error; err != nil {
			return err
		}
		t.ID = existing.ID
		return nil
	})
}

func (r *trendRepo) List(ctx context.Context, tx *gorm.DB, filter ListFilter) ([]*types.Trend, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).Model(&types.Trend{})
	if len(filter.Niches) > 0 {
		q = q.Where("niche IN ?", filter.Niches)
	}
	switch filter.Sort {
	case SortRecent:
		q = q.Order("fetched_at DESC")
	default:
		q = q.Order("popularity_score DESC")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var results []*types.Trend
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *trendRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Trend, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Trend
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
