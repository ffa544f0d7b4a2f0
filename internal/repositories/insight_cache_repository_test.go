package repositories

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nychousing-insights/internal/models"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/logger"
)

func setupInsightCache(t *testing.T) InsightCache {
	t.Helper()
	logger.InitLogger(io.Discard, "ERROR")
	mr := miniredis.RunT(t)
	cache.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.RedisClient.Close()
		cache.RedisClient = nil
	})
	return NewRedisInsightCache(time.Minute)
}

func TestRedisInsightCacheRoundTrip(t *testing.T) {
	insightCache := setupInsightCache(t)
	ctx := context.Background()

	stored := models.PriceDistribution{Borough: "Queens", Count: 42, Median: 650000}
	require.NoError(t, insightCache.Set(ctx, cache.DistributionKey("Queens", ""), stored))

	var got models.PriceDistribution
	require.NoError(t, insightCache.Get(ctx, cache.DistributionKey("Queens", ""), &got))
	assert.Equal(t, stored.Borough, got.Borough)
	assert.Equal(t, stored.Count, got.Count)
	assert.Equal(t, stored.Median, got.Median)
}

func TestRedisInsightCacheMiss(t *testing.T) {
	insightCache := setupInsightCache(t)

	var got models.PriceDistribution
	err := insightCache.Get(context.Background(), cache.DistributionKey("Bronx", ""), &got)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestNoopInsightCache(t *testing.T) {
	insightCache := NewNoopInsightCache()
	ctx := context.Background()

	require.NoError(t, insightCache.Set(ctx, "insights:summary", models.Summary{TotalListings: 10}))

	var got models.Summary
	err := insightCache.Get(ctx, "insights:summary", &got)
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
