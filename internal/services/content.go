package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	contentrepo "github.com/trendforge/trendforge-backend/internal/data/repos/content"
	trendrepo "github.com/trendforge/trendforge-backend/internal/data/repos/trend"
	userrepo "github.com/trendforge/trendforge-backend/internal/data/repos/user"
	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/apperr"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

const (
	// FreeMonthlyLimit caps content generation for free-tier users over a
	// trailing 30-day window.
	FreeMonthlyLimit = 3

	quotaWindow = 30 * 24 * time.Hour
)

// GenerateInput carries a generation request. Title and Description override
// the generated values when non-empty.
type GenerateInput struct {
	TrendID     uuid.UUID
	Title       string
	Description string
	ContentType string
}

// UpdateInput carries a partial content update; nil fields are left as-is.
type UpdateInput struct {
	Title           *string
	Description     *string
	ScriptStructure map[string]any
	SEOData         map[string]any
}

type ContentService interface {
	List(ctx context.Context, userID uuid.UUID, status string, page int) ([]*types.Content, error)
	Get(ctx context.Context, userID, contentID uuid.UUID) (*types.Content, error)
	// Generate creates a new content record for a trend. Free-tier users are
	// capped at FreeMonthlyLimit creations per trailing 30 days.
	Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (*types.Content, error)
	// Update edits a content record. Archived content is locked for free
	// users.
	Update(ctx context.Context, userID, contentID uuid.UUID, in UpdateInput) (*types.Content, error)
	// Delete archives for free users and hard-deletes for premium users.
	// Returns true when the content was archived rather than deleted.
	Delete(ctx context.Context, userID, contentID uuid.UUID) (bool, error)
}

type contentService struct {
	log         *logger.Logger
	contentRepo contentrepo.ContentRepo
	trendRepo   trendrepo.TrendRepo
	userRepo    userrepo.UserRepo
	profileRepo userrepo.UserProfileRepo
	generation  ContentGenerationService
}

func NewContentService(
	log *logger.Logger,
	contentRepo contentrepo.ContentRepo,
	trendRepo trendrepo.TrendRepo,
	userRepo userrepo.UserRepo,
	profileRepo userrepo.UserProfileRepo,
	generation ContentGenerationService,
) ContentService {
	return &contentService{
		log:         log.With("service", "ContentService"),
		contentRepo: contentRepo,
		trendRepo:   trendRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		generation:  generation,
	}
}

func (s *contentService) List(ctx context.Context, userID uuid.UUID, status string, page int) ([]*types.Content, error) {
	if status != types.ContentStatusActive && status != types.ContentStatusArchived && status != "" {
		return nil, apperr.ErrInvalidArgument
	}
	return s.contentRepo.ListByUser(ctx, nil, userID, status, page, contentrepo.DefaultPageSize)
}

func (s *contentService) Get(ctx context.Context, userID, contentID uuid.UUID) (*types.Content, error) {
	c, err := s.contentRepo.GetByIDForUser(ctx, nil, userID, contentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contentService) Generate(ctx context.Context, userID uuid.UUID, in GenerateInput) (*types.Content, error) {
	if !types.ValidContentType(in.ContentType) {
		return nil, apperr.ErrInvalidArgument
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsPremium() {
		count, err := s.contentRepo.CountCreatedSince(ctx, nil, userID, time.Now().Add(-quotaWindow))
		if err != nil {
			return nil, err
		}
		if count >= FreeMonthlyLimit {
			return nil, apperr.ErrQuotaExceeded
		}
	}

	trend, err := s.trendRepo.GetByID(ctx, nil, in.TrendID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	generated := s.generation.Generate(ctx, trend, in.ContentType, s.contentPreferences(ctx, userID))

	title := in.Title
	if title == "" {
		title = generated.Title
	}
	description := in.Description
	if description == "" {
		description = generated.Description
	}

	scriptStructure, err := json.Marshal(generated.ScriptStructure)
	if err != nil {
		return nil, err
	}
	seoData, err := json.Marshal(generated.SEOData)
	if err != nil {
		return nil, err
	}

	c := &types.Content{
		UserID:          userID,
		TrendID:         trend.ID,
		Title:           title,
		Description:     description,
		ContentType:     in.ContentType,
		ScriptStructure: datatypes.JSON(scriptStructure),
		SEOData:         datatypes.JSON(seoData),
		Status:          types.ContentStatusActive,
	}
	created, err := s.contentRepo.Create(ctx, nil, []*types.Content{c})
	if err != nil {
		return nil, err
	}

	created[0].Trend = trend
	return created[0], nil
}

func (s *contentService) Update(ctx context.Context, userID, contentID uuid.UUID, in UpdateInput) (*types.Content, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, userID, contentID)
	if err != nil {
		return nil, err
	}

	if existing.Status == types.ContentStatusArchived && !user.IsPremium() {
		return nil, apperr.ErrArchivedLocked
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.ScriptStructure != nil {
		raw, err := json.Marshal(in.ScriptStructure)
		if err != nil {
			return nil, err
		}
		fields["script_structure"] = datatypes.JSON(raw)
	}
	if in.SEOData != nil {
		raw, err := json.Marshal(in.SEOData)
		if err != nil {
			return nil, err
		}
		fields["seo_data"] = datatypes.JSON(raw)
	}

	if len(fields) > 0 {
		if err := s.contentRepo.UpdateFields(ctx, nil, contentID, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, contentID)
}

func (s *contentService) Delete(ctx context.Context, userID, contentID uuid.UUID) (bool, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return false, err
	}

	existing, err := s.Get(ctx, userID, contentID)
	if err != nil {
		return false, err
	}

	if user.IsFree() {
		err := s.contentRepo.UpdateFields(ctx, nil, existing.ID, map[string]any{
			"status":      types.ContentStatusArchived,
			"archived_at": time.Now(),
		})
		return true, err
	}
	return false, s.contentRepo.DeleteByID(ctx, nil, existing.ID)
}

func (s *contentService) loadUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.ErrUnauthorized
	}
	return users[0], nil
}

// contentPreferences loads the user's generation preferences; any failure
// just means generation runs with defaults.
func (s *contentService) contentPreferences(ctx context.Context, userID uuid.UUID) map[string]any {
	profile, err := s.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil || profile == nil || len(profile.ContentPreferences) == 0 {
		return nil
	}
	var preferences map[string]any
	if err := json.Unmarshal(profile.ContentPreferences, &preferences); err != nil {
		return nil
	}
	return preferences
}
