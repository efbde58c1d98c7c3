package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atelier_couture/internal/domain/reporting"

	"github.com/go-redis/redis/v8"
)

const statsKeyPattern = "stats:*"

// StatsCache stores monthly summaries in Redis so repeated stats requests
// do not rescan the orders table.
type StatsCache struct {
	rdb *redis.Client
}

// NewStatsCache connects to Redis using the given URL. An empty URL means
// caching is disabled and (nil, nil) is returned.
func NewStatsCache(redisURL string) (*StatsCache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &StatsCache{rdb: rdb}, nil
}

func (c *StatsCache) GetSummary(ctx context.Context, key string) (reporting.MonthlySummary, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return reporting.MonthlySummary{}, false, nil
		}
		return reporting.MonthlySummary{}, false, fmt.Errorf("failed to get cached summary: %w", err)
	}

	var summary reporting.MonthlySummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return reporting.MonthlySummary{}, false, fmt.Errorf("failed to unmarshal cached summary: %w", err)
	}

	return summary, true, nil
}

func (c *StatsCache) SetSummary(ctx context.Context, key string, summary reporting.MonthlySummary, ttl time.Duration) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

// InvalidateAll drops every cached summary. Order mutations call this so
// stale totals are never served.
func (c *StatsCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.rdb.Keys(ctx, statsKeyPattern).Result()
	if err != nil {
		return fmt.Errorf("failed to list cached summaries: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close releases the Redis connection.
func (c *StatsCache) Close() error {
	return c.rdb.Close()
}
