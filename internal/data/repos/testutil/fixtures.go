package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/trendforge/trendforge-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, tier string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               "Test User",
		SubscriptionStatus: tier,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedTrend(tb testing.TB, ctx context.Context, tx *gorm.DB, title, niche string, score int) *types.Trend {
	tb.Helper()
	t := &types.Trend{
		ID:              uuid.New(),
		Title:           title,
		Niche:           niche,
		Description:     "seed trend",
		RelatedKeywords: datatypes.JSON([]byte(`["seed"]`)),
		PopularityScore: score,
		Source:          types.TrendSourceMock,
		Metadata:        datatypes.JSON([]byte(`{}`)),
		FetchedAt:       time.Now(),
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed trend: %v", err)
	}
	return t
}

func SeedContent(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, trendID uuid.UUID, createdAt time.Time) *types.Content {
	tb.Helper()
	c := &types.Content{
		ID:              uuid.New(),
		UserID:          userID,
		TrendID:         trendID,
		Title:           "seed content",
		ContentType:     types.ContentTypeVideoScript,
		ScriptStructure: datatypes.JSON([]byte(`{}`)),
		SEOData:         datatypes.JSON([]byte(`{}`)),
		Status:          types.ContentStatusActive,
		CreatedAt:       createdAt,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed content: %v", err)
	}
	return c
}
