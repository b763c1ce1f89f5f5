package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/apperr"
)

type contentFixture struct {
	svc         ContentService
	contentRepo *fakeContentRepo
	trendRepo   *fakeTrendRepo
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
	trend       *types.Trend
	freeUser    *types.User
	premiumUser *types.User
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()

	trend := testTrend()
	free := &types.User{ID: uuid.New(), Email: "free@example.com", Name: "Free", SubscriptionStatus: types.TierFree}
	premium := &types.User{ID: uuid.New(), Email: "premium@example.com", Name: "Premium", SubscriptionStatus: types.TierPremium}

	contentRepo := &fakeContentRepo{tiers: map[uuid.UUID]string{
		free.ID:    types.TierFree,
		premium.ID: types.TierPremium,
	}}
	trendRepo := &fakeTrendRepo{trends: []*types.Trend{trend}}
	userRepo := &fakeUserRepo{users: map[uuid.UUID]*types.User{free.ID: free, premium.ID: premium}}
	profileRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*types.UserProfile{}}

	log := testLogger(t)
	generation := NewContentGenerationService(log, nil)
	svc := NewContentService(log, contentRepo, trendRepo, userRepo, profileRepo, generation)

	return &contentFixture{
		svc:         svc,
		contentRepo: contentRepo,
		trendRepo:   trendRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		trend:       trend,
		freeUser:    free,
		premiumUser: premium,
	}
}

func TestContentGenerateCreatesRecord(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	got, err := f.svc.Generate(ctx, f.freeUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Status != types.ContentStatusActive {
		t.Errorf("new content should be active, got %s", got.Status)
	}
	if got.Title != "Content about AI in Healthcare" {
		t.Errorf("unexpected generated title %q", got.Title)
	}
	if got.Trend == nil || got.Trend.ID != f.trend.ID {
		t.Errorf("expected trend to be attached")
	}
	if len(got.ScriptStructure) == 0 || len(got.SEOData) == 0 {
		t.Errorf("expected structure and seo data to be populated")
	}
}

func TestContentGenerateTitleOverride(t *testing.T) {
	f := newContentFixture(t)

	got, err := f.svc.Generate(context.Background(), f.freeUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		Title:       "My Custom Title",
		Description: "My custom description",
		ContentType: types.ContentTypeBlogPost,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Title != "My Custom Title" || got.Description != "My custom description" {
		t.Errorf("overrides should win, got %q / %q", got.Title, got.Description)
	}
}

func TestContentGenerateInvalidType(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.Generate(context.Background(), f.freeUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: "podcast",
	})
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestContentGenerateTrendNotFound(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.Generate(context.Background(), f.freeUser.ID, GenerateInput{
		TrendID:     uuid.New(),
		ContentType: types.ContentTypeVideoScript,
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentGenerateFreeQuota(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	for i := 0; i < FreeMonthlyLimit; i++ {
		if _, err := f.svc.Generate(ctx, f.freeUser.ID, GenerateInput{
			TrendID:     f.trend.ID,
			ContentType: types.ContentTypeVideoScript,
		}); err != nil {
			t.Fatalf("Generate %d: %v", i, err)
		}
	}

	_, err := f.svc.Generate(ctx, f.freeUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	})
	if !errors.Is(err, apperr.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded after %d creations, got %v", FreeMonthlyLimit, err)
	}
}

func TestContentGenerateQuotaWindowSlides(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	// Old content outside the trailing 30 days does not count.
	for i := 0; i < FreeMonthlyLimit; i++ {
		old := &types.Content{
			UserID:      f.freeUser.ID,
			TrendID:     f.trend.ID,
			Title:       "old",
			ContentType: types.ContentTypeVideoScript,
			Status:      types.ContentStatusActive,
			CreatedAt:   time.Now().Add(-40 * 24 * time.Hour),
		}
		if _, err := f.contentRepo.Create(ctx, nil, []*types.Content{old}); err != nil {
			t.Fatalf("seed old content: %v", err)
		}
	}

	if _, err := f.svc.Generate(ctx, f.freeUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	}); err != nil {
		t.Fatalf("expected old content to be outside the quota window, got %v", err)
	}
}

func TestContentGeneratePremiumUnlimited(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	for i := 0; i < FreeMonthlyLimit+2; i++ {
		if _, err := f.svc.Generate(ctx, f.premiumUser.ID, GenerateInput{
			TrendID:     f.trend.ID,
			ContentType: types.ContentTypeSocialMedia,
		}); err != nil {
			t.Fatalf("premium Generate %d: %v", i, err)
		}
	}
}

func TestContentUpdateArchivedLockedForFree(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Generate(ctx, f.freeUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	archived, err := f.svc.Delete(ctx, f.freeUser.ID, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !archived {
		t.Fatalf("free delete should archive")
	}

	title := "new title"
	_, err = f.svc.Update(ctx, f.freeUser.ID, created.ID, UpdateInput{Title: &title})
	if !errors.Is(err, apperr.ErrArchivedLocked) {
		t.Fatalf("expected ErrArchivedLocked, got %v", err)
	}
}

func TestContentUpdateArchivedAllowedForPremium(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Generate(ctx, f.premiumUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Archive it directly; premium users can still edit archived content.
	now := time.Now()
	if err := f.contentRepo.UpdateFields(ctx, nil, created.ID, map[string]any{
		"status":      types.ContentStatusArchived,
		"archived_at": now,
	}); err != nil {
		t.Fatalf("archive: %v", err)
	}

	title := "edited while archived"
	updated, err := f.svc.Update(ctx, f.premiumUser.ID, created.ID, UpdateInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != title {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
}

func TestContentDeletePremiumHardDeletes(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Generate(ctx, f.premiumUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	archived, err := f.svc.Delete(ctx, f.premiumUser.ID, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if archived {
		t.Fatalf("premium delete should hard-delete, not archive")
	}

	if _, err := f.svc.Get(ctx, f.premiumUser.ID, created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestContentGetMissing(t *testing.T) {
	f := newContentFixture(t)

	if _, err := f.svc.Get(context.Background(), f.freeUser.ID, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentGetOtherUsersContent(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	created, err := f.svc.Generate(ctx, f.premiumUser.ID, GenerateInput{
		TrendID:     f.trend.ID,
		ContentType: types.ContentTypeVideoScript,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := f.svc.Get(ctx, f.freeUser.ID, created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("cross-user reads should look like missing content, got %v", err)
	}
}
