package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

const DefaultPageSize = 10

type ContentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contents []*types.Content) ([]*types.Content, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, userID, contentID uuid.UUID) (*types.Content, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string, page, pageSize int) ([]*types.Content, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, contentID uuid.UUID, fields map[string]any) error
	DeleteByID(ctx context.Context, tx *gorm.DB, contentID uuid.UUID) error
	CountCreatedSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) (int64, error)
	// ArchiveExpiredForFreeUsers archives every active content row owned by a
	// free-tier user and created before cutoff, in one bulk update. Returns the
	// number of rows archived; already-archived rows are excluded, so repeated
	// runs are idempotent.
	ArchiveExpiredForFreeUsers(ctx context.Context, tx *gorm.DB, cutoff, archivedAt time.Time) (int64, error)
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepo(db *gorm.DB, baseLog *logger.Logger) ContentRepo {
	repoLog := baseLog.With("repo", "ContentRepo")
	return &contentRepo{db: db, log: repoLog}
}

func (r *contentRepo) Create(ctx context.Context, tx *gorm.DB, contents []*types.Content) ([]*types.Content, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(contents) == 0 {
		return []*types.Content{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, userID, contentID uuid.UUID) (*types.Content, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Content
	if err := transaction.WithContext(ctx).
		Preload("Trend").
		Where("id = ? AND user_id = ?", contentID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *contentRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string, page, pageSize int) ([]*types.Content, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	q := transaction.WithContext(ctx).
		Preload("Trend").
		Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var results []*types.Content
	if err := q.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, contentID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.Content{}).
		Where("id = ?", contentID).
		Updates(fields).Error
}

func (r *contentRepo) DeleteByID(ctx context.Context, tx *gorm.DB, contentID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", contentID).
		Delete(&types.Content{}).Error
}

func (r *contentRepo) CountCreatedSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Content{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *contentRepo) ArchiveExpiredForFreeUsers(ctx context.Context, tx *gorm.DB, cutoff, archivedAt time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	freeUsers := transaction.WithContext(ctx).
		Model(&types.User{}).
		Select("id").
		Where("subscription_status = ?", types.TierFree)

	result := transaction.WithContext(ctx).
		Model(&types.Content{}).
		Where("status = ?", types.ContentStatusActive).
		Where("created_at < ?", cutoff).
		Where("user_id IN (?)", freeUsers).
		Updates(map[string]any{
			"status":      types.ContentStatusArchived,
			"archived_at": archivedAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
