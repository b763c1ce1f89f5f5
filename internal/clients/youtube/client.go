package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/envutil"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

const maxScore = 99

// Client fetches trending video candidates for a niche from the YouTube
// mostPopular chart and normalizes them into trend candidates.
type Client interface {
	FetchTrends(ctx context.Context, niche string) ([]types.TrendCandidate, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	regionCode string
	maxResults int
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing YOUTUBE_API_KEY")
	}

	baseURL := envutil.GetEnv("YOUTUBE_BASE_URL", "https://www.googleapis.com", log)
	baseURL = strings.TrimRight(baseURL, "/")

	regionCode := envutil.GetEnv("YOUTUBE_REGION_CODE", "US", log)
	maxResults := envutil.GetEnvAsInt("YOUTUBE_MAX_RESULTS", 10, log)
	timeoutSec := envutil.GetEnvAsInt("YOUTUBE_TIMEOUT_SECONDS", 10, log)

	return &client{
		log:        log.With("client", "YouTubeClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		regionCode: regionCode,
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

// categoryByNiche maps a niche label to a YouTube video category id. Unknown
// niches fall back to the default category.
var categoryByNiche = map[string]string{
	"tech":       "28", // Science & Technology
	"gaming":     "20", // Gaming
	"motivation": "22", // People & Blogs
	"business":   "22", // People & Blogs
	"health":     "26", // Howto & Style
	"education":  "27", // Education
}

const defaultCategoryID = "0"

func categoryID(niche string) string {
	if id, ok := categoryByNiche[niche]; ok {
		return id
	}
	return defaultCategoryID
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Tags         []string `json:"tags"`
		ChannelTitle string   `json:"channelTitle"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    json.Number `json:"viewCount"`
		LikeCount    json.Number `json:"likeCount"`
		CommentCount json.Number `json:"commentCount"`
	} `json:"statistics"`
}

func (c *client) FetchTrends(ctx context.Context, niche string) ([]types.TrendCandidate, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("chart", "mostPopular")
	q.Set("regionCode", c.regionCode)
	q.Set("maxResults", strconv.Itoa(c.maxResults))
	q.Set("videoCategoryId", categoryID(niche))
	q.Set("key", c.apiKey)

	endpoint := c.baseURL + "/youtube/v3/videos?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build youtube request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read youtube response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube http %d: %s", resp.StatusCode, string(body))
	}

	var parsed videosResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode youtube response: %w", err)
	}

	candidates := make([]types.TrendCandidate, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		views := countValue(item.Statistics.ViewCount)
		likes := countValue(item.Statistics.LikeCount)
		comments := countValue(item.Statistics.CommentCount)

		title := item.Snippet.Title
		if title == "" {
			title = "Untitled"
		}

		keywords := item.Snippet.Tags
		if len(keywords) == 0 {
			keywords = keywordsFromTitle(title)
		}

		candidates = append(candidates, types.TrendCandidate{
			Title:           title,
			Description:     item.Snippet.Description,
			Keywords:        keywords,
			PopularityScore: popularityScore(views),
			Metadata: map[string]any{
				"video_id":      item.ID,
				"channel_title": item.Snippet.ChannelTitle,
				"view_count":    views,
				"like_count":    likes,
				"comment_count": comments,
			},
		})
	}
	return candidates, nil
}

// popularityScore normalizes a raw view count into a 0-99 score. The log10
// transform grows sublinearly with views and the clamp keeps it below 100.
func popularityScore(views int64) int {
	if views < 0 {
		views = 0
	}
	score := int(math.Log10(float64(views)+1) * 10)
	if score > maxScore {
		return maxScore
	}
	return score
}

// keywordsFromTitle derives up to 5 keywords: lower-cased title tokens longer
// than 3 characters, in original order.
func keywordsFromTitle(title string) []string {
	words := strings.Fields(strings.ToLower(title))
	keywords := make([]string, 0, 5)
	for _, w := range words {
		if len(w) > 3 {
			keywords = append(keywords, w)
			if len(keywords) == 5 {
				break
			}
		}
	}
	return keywords
}

// countValue tolerates both numeric and string-encoded counters; YouTube
// serves statistics as strings. Absent or malformed values count as 0.
func countValue(n json.Number) int64 {
	if n == "" {
		return 0
	}
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return v
}
