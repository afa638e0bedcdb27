// Package cache holds the Redis-backed report cache with a no-op fallback
// for deployments without Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/dukkanhq/dukkan-api/internal/application/dto"
	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
)

var _ reporting.SummaryCache = (*RedisReportCache)(nil)

// RedisReportCache caches report summaries in Redis as JSON.
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache connects a Redis client for report caching.
func NewRedisReportCache(addr, password string, db int) *RedisReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisReportCache{client: client}
}

// Ping checks connectivity.
func (c *RedisReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

// Get returns the cached summary for key, ok=false on miss.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*dto.ReportResponse, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var resp dto.ReportResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

// Set stores the summary under key with a TTL.
func (c *RedisReportCache) Set(ctx context.Context, key string, value *dto.ReportResponse, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
