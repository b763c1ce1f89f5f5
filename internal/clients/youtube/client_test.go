package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("YOUTUBE_BASE_URL", baseURL)
	c, err := NewClient(testLogger(t))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	if _, err := NewClient(testLogger(t)); err == nil {
		t.Fatalf("expected error when YOUTUBE_API_KEY is unset")
	}
}

func TestFetchTrendsParsesItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/videos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("chart") != "mostPopular" {
			t.Errorf("expected chart=mostPopular, got %s", q.Get("chart"))
		}
		if q.Get("videoCategoryId") != "20" {
			t.Errorf("expected gaming category 20, got %s", q.Get("videoCategoryId"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("expected api key to be forwarded, got %s", q.Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "vid-1",
					"snippet": {
						"title": "Next-Gen Console Comparison",
						"description": "Which console wins in 2026?",
						"tags": ["gaming", "console"],
						"channelTitle": "GameChannel"
					},
					"statistics": {"viewCount": "150000", "likeCount": "9000", "commentCount": "420"}
				},
				{
					"id": "vid-2",
					"snippet": {
						"title": "Speedrunning the Hardest Boss Fight Ever Made",
						"description": "",
						"channelTitle": "RunFast"
					},
					"statistics": {}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := c.FetchTrends(ctx, "gaming")
	if err != nil {
		t.Fatalf("FetchTrends: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}

	first := got[0]
	if first.Title != "Next-Gen Console Comparison" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if len(first.Keywords) != 2 || first.Keywords[0] != "gaming" {
		t.Errorf("expected tags to become keywords, got %v", first.Keywords)
	}
	// log10(150001)*10 is 51.x, truncated to 51.
	if first.PopularityScore != 51 {
		t.Errorf("expected score 51 for 150000 views, got %d", first.PopularityScore)
	}
	if first.Metadata["video_id"] != "vid-1" || first.Metadata["channel_title"] != "GameChannel" {
		t.Errorf("unexpected metadata %v", first.Metadata)
	}

	second := got[1]
	if second.PopularityScore != 0 {
		t.Errorf("expected score 0 with no statistics, got %d", second.PopularityScore)
	}
	want := []string{"speedrunning", "hardest", "boss", "fight", "ever"}
	if len(second.Keywords) != len(want) {
		t.Fatalf("expected %d derived keywords, got %v", len(want), second.Keywords)
	}
	for i := range want {
		if second.Keywords[i] != want[i] {
			t.Errorf("keyword %d: expected %q, got %q", i, want[i], second.Keywords[i])
		}
	}
}

func TestFetchTrendsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"quotaExceeded"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.FetchTrends(context.Background(), "tech"); err == nil {
		t.Fatalf("expected error on http 403")
	}
}

func TestPopularityScore(t *testing.T) {
	cases := []struct {
		views int64
		want  int
	}{
		{0, 0},
		{9, 10},
		{999, 30},
		{1_000_000, 60},
		{-5, 0},
	}
	for _, tc := range cases {
		if got := popularityScore(tc.views); got != tc.want {
			t.Errorf("popularityScore(%d) = %d, want %d", tc.views, got, tc.want)
		}
	}

	// Score never exceeds the cap even for absurd view counts.
	if got := popularityScore(1 << 62); got != maxScore {
		t.Errorf("expected clamp at %d, got %d", maxScore, got)
	}

	// Monotonic in views.
	prev := -1
	for _, v := range []int64{0, 10, 100, 10_000, 1_000_000, 100_000_000} {
		s := popularityScore(v)
		if s < prev {
			t.Errorf("score decreased at %d views: %d < %d", v, s, prev)
		}
		prev = s
	}
}

func TestCategoryID(t *testing.T) {
	if categoryID("tech") != "28" || categoryID("education") != "27" {
		t.Fatalf("unexpected category mapping")
	}
	if categoryID("cooking") != defaultCategoryID {
		t.Fatalf("unknown niche should map to the default category")
	}
}
