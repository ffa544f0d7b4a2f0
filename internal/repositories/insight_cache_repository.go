package repositories

import (
	"context"
	"time"

	"nychousing-insights/pkg/cache"
)

// redisInsightCache stores insight views in Redis with a fixed TTL.
type redisInsightCache struct {
	ttl time.Duration
}

func NewRedisInsightCache(ttl time.Duration) InsightCache {
	return &redisInsightCache{ttl: ttl}
}

func (c *redisInsightCache) Get(ctx context.Context, key string, dest interface{}) error {
	return cache.Get(ctx, key, dest)
}

func (c *redisInsightCache) Set(ctx context.Context, key string, value interface{}) error {
	return cache.Set(ctx, key, value, c.ttl)
}

// noopInsightCache is used when Redis is disabled. Every lookup misses and
// writes are discarded, so insight views are always computed fresh.
type noopInsightCache struct{}

func NewNoopInsightCache() InsightCache {
	return &noopInsightCache{}
}

func (c *noopInsightCache) Get(ctx context.Context, key string, dest interface{}) error {
	return cache.ErrCacheMiss
}

func (c *noopInsightCache) Set(ctx context.Context, key string, value interface{}) error {
	return nil
}
