package content

import (
	"context"
	"testing"
	"time"

	"github.com/trendforge/trendforge-backend/internal/data/repos/testutil"
	types "github.com/trendforge/trendforge-backend/internal/domain"
)

func TestContentRepoListAndCount(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewContentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "contentrepo@example.com", types.TierFree)
	tr := testutil.SeedTrend(t, ctx, tx, "AI in Healthcare", "tech", 95)

	testutil.SeedContent(t, ctx, tx, u.ID, tr.ID, time.Now())
	older := testutil.SeedContent(t, ctx, tx, u.ID, tr.ID, time.Now().Add(-45*24*time.Hour))

	active, err := repo.ListByUser(ctx, tx, u.ID, types.ContentStatusActive, 1, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("ListByUser: expected 2 active rows, got %d", len(active))
	}
	if active[0].CreatedAt.Before(active[1].CreatedAt) {
		t.Fatalf("ListByUser: expected created_at desc ordering")
	}

	count, err := repo.CountCreatedSince(ctx, tx, u.ID, time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("CountCreatedSince: %v", err)
	}
	if count != 1 {
		t.Fatalf("CountCreatedSince: expected 1 row inside the window, got %d", count)
	}
	_ = older
}

func TestContentRepoArchiveExpiredIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewContentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	free := testutil.SeedUser(t, ctx, tx, "free@example.com", types.TierFree)
	premium := testutil.SeedUser(t, ctx, tx, "premium@example.com", types.TierPremium)
	tr := testutil.SeedTrend(t, ctx, tx, "Remote Work Revolution", "business", 90)

	old := testutil.SeedContent(t, ctx, tx, free.ID, tr.ID, time.Now().Add(-8*24*time.Hour))
	fresh := testutil.SeedContent(t, ctx, tx, free.ID, tr.ID, time.Now())
	premiumOld := testutil.SeedContent(t, ctx, tx, premium.ID, tr.ID, time.Now().Add(-8*24*time.Hour))

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	now := time.Now()

	archived, err := repo.ArchiveExpiredForFreeUsers(ctx, tx, cutoff, now)
	if err != nil {
		t.Fatalf("ArchiveExpiredForFreeUsers: %v", err)
	}
	if archived != 1 {
		t.Fatalf("ArchiveExpiredForFreeUsers: expected 1 archived row, got %d", archived)
	}

	got, err := repo.GetByIDForUser(ctx, tx, free.ID, old.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser: %v", err)
	}
	if got.Status != types.ContentStatusArchived || got.ArchivedAt == nil {
		t.Fatalf("expected archived content with archived_at set, got %+v", got)
	}

	// Second run on the same day: the active filter excludes archived rows.
	archived, err = repo.ArchiveExpiredForFreeUsers(ctx, tx, cutoff, now)
	if err != nil {
		t.Fatalf("ArchiveExpiredForFreeUsers (second run): %v", err)
	}
	if archived != 0 {
		t.Fatalf("ArchiveExpiredForFreeUsers (second run): expected 0, got %d", archived)
	}

	stillActive, err := repo.GetByIDForUser(ctx, tx, free.ID, fresh.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser (fresh): %v", err)
	}
	if stillActive.Status != types.ContentStatusActive {
		t.Fatalf("fresh content should remain active, got %s", stillActive.Status)
	}

	premiumUntouched, err := repo.GetByIDForUser(ctx, tx, premium.ID, premiumOld.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser (premium): %v", err)
	}
	if premiumUntouched.Status != types.ContentStatusActive {
		t.Fatalf("premium content should never be auto-archived, got %s", premiumUntouched.Status)
	}
}
