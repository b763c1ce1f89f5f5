package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/trendforge/trendforge-backend/internal/domain"
	"github.com/trendforge/trendforge-backend/internal/pkg/envutil"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

// TrendCache caches the full trend list per niche so repeated queries skip
// the database; callers apply sort and limit after reading. A cache miss
// returns (nil, nil).
type TrendCache interface {
	Get(ctx context.Context, niche string) ([]*types.Trend, error)
	Set(ctx context.Context, niche string, trends []*types.Trend) error
	Invalidate(ctx context.Context, niche string) error
	Close() error
}

type trendCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewTrendCache(log *logger.Logger) (TrendCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttlMinutes := envutil.GetEnvAsInt("TREND_CACHE_TTL_MINUTES", 60, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    os.Getenv("REDIS_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &trendCache{
		log: log.With("service", "TrendCache"),
		rdb: rdb,
		ttl: time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

func cacheKey(niche string) string {
	return "trends:" + strings.ToLower(strings.TrimSpace(niche))
}

func (c *trendCache) Get(ctx context.Context, niche string) ([]*types.Trend, error) {
	if c == nil || c.rdb == nil {
		return nil, fmt.Errorf("trend cache not initialized")
	}

	raw, err := c.rdb.Get(ctx, cacheKey(niche)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var trends []*types.Trend
	if err := json.Unmarshal(raw, &trends); err != nil {
		// Stale or corrupt payload; treat as a miss so the store refreshes it.
		c.log.Warn("Bad cached trend payload", "niche", niche, "error", err)
		return nil, nil
	}
	return trends, nil
}

func (c *trendCache) Set(ctx context.Context, niche string, trends []*types.Trend) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("trend cache not initialized")
	}

	raw, err := json.Marshal(trends)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(niche), raw, c.ttl).Err()
}

func (c *trendCache) Invalidate(ctx context.Context, niche string) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("trend cache not initialized")
	}
	return c.rdb.Del(ctx, cacheKey(niche)).Err()
}

func (c *trendCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
