package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	trendrepo "github.com/trendforge/trendforge-backend/internal/data/repos/trend"
	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

func testLogger(t interface{ Fatalf(string, ...any) }) *logger.Logger {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}

// ---- trend repo ----

type fakeTrendRepo struct {
	trends  []*types.Trend
	listErr error
}

func (f *fakeTrendRepo) Upsert(ctx context.Context, tx *gorm.DB, t *types.Trend) error {
	for _, existing := range f.trends {
		if existing.Title == t.Title && existing.Niche == t.Niche {
			t.ID = existing.ID
			*existing = *t
			return nil
		}
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	f.trends = append(f.trends, &cp)
	return nil
}

func (f *fakeTrendRepo) List(ctx context.Context, tx *gorm.DB, filter trendrepo.ListFilter) ([]*types.Trend, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*types.Trend
	for _, t := range f.trends {
		if len(filter.Niches) > 0 && !containsString(filter.Niches, t.Niche) {
			continue
		}
		out = append(out, t)
	}
	if filter.Sort == trendrepo.SortRecent {
		sort.SliceStable(out, func(i, j int) bool { return out[i].FetchedAt.After(out[j].FetchedAt) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].PopularityScore > out[j].PopularityScore })
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeTrendRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Trend, error) {
	for _, t := range f.trends {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// ---- content repo ----

type fakeContentRepo struct {
	contents []*types.Content
	tiers    map[uuid.UUID]string

	archiveCutoff time.Time
}

func (f *fakeContentRepo) Create(ctx context.Context, tx *gorm.DB, contents []*types.Content) ([]*types.Content, error) {
	for _, c := range contents {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		f.contents = append(f.contents, c)
	}
	return contents, nil
}

func (f *fakeContentRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, userID, contentID uuid.UUID) (*types.Content, error) {
	for _, c := range f.contents {
		if c.ID == contentID && c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeContentRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string, page, pageSize int) ([]*types.Content, error) {
	var out []*types.Content
	for _, c := range f.contents {
		if c.UserID != userID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, contentID uuid.UUID, fields map[string]any) error {
	for _, c := range f.contents {
		if c.ID != contentID {
			continue
		}
		if v, ok := fields["title"].(string); ok {
			c.Title = v
		}
		if v, ok := fields["description"].(string); ok {
			c.Description = v
		}
		if v, ok := fields["status"].(string); ok {
			c.Status = v
		}
		if v, ok := fields["archived_at"].(time.Time); ok {
			c.ArchivedAt = &v
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeContentRepo) DeleteByID(ctx context.Context, tx *gorm.DB, contentID uuid.UUID) error {
	for i, c := range f.contents {
		if c.ID == contentID {
			f.contents = append(f.contents[:i], f.contents[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeContentRepo) CountCreatedSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	for _, c := range f.contents {
		if c.UserID == userID && !c.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *fakeContentRepo) ArchiveExpiredForFreeUsers(ctx context.Context, tx *gorm.DB, cutoff, archivedAt time.Time) (int64, error) {
	f.archiveCutoff = cutoff
	var archived int64
	for _, c := range f.contents {
		if f.tiers[c.UserID] != types.TierFree {
			continue
		}
		if c.Status != types.ContentStatusActive || !c.CreatedAt.Before(cutoff) {
			continue
		}
		c.Status = types.ContentStatusArchived
		at := archivedAt
		c.ArchivedAt = &at
		archived++
	}
	return archived, nil
}

// ---- user repos ----

type fakeUserRepo struct {
	users map[uuid.UUID]*types.User
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		f.users[u.ID] = u
	}
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	var out []*types.User
	for _, id := range userIDs {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListByTier(ctx context.Context, tx *gorm.DB, tier string) ([]*types.User, error) {
	var out []*types.User
	for _, u := range f.users {
		if u.SubscriptionStatus == tier {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateName(ctx context.Context, tx *gorm.DB, userID uuid.UUID, name string) error {
	if u, ok := f.users[userID]; ok {
		u.Name = name
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*types.UserProfile
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.UserProfile) (*types.UserProfile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles[profile.UserID] = profile
	return profile, nil
}

// ---- clients ----

type fakeTrendSource struct {
	candidates []types.TrendCandidate
	err        error
	calls      int
}

func (f *fakeTrendSource) FetchTrends(ctx context.Context, niche string) ([]types.TrendCandidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type fakeAI struct {
	text  string
	err   error
	calls int
}

func (f *fakeAI) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeTrendCache struct {
	entries map[string][]*types.Trend
	gets    int
	sets    int
}

func newFakeTrendCache() *fakeTrendCache {
	return &fakeTrendCache{entries: map[string][]*types.Trend{}}
}

func (f *fakeTrendCache) Get(ctx context.Context, niche string) ([]*types.Trend, error) {
	f.gets++
	return f.entries[niche], nil
}

func (f *fakeTrendCache) Set(ctx context.Context, niche string, trends []*types.Trend) error {
	f.sets++
	f.entries[niche] = trends
	return nil
}

func (f *fakeTrendCache) Invalidate(ctx context.Context, niche string) error {
	delete(f.entries, niche)
	return nil
}

func (f *fakeTrendCache) Close() error { return nil }
