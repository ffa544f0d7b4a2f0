package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"nychousing-insights/pkg/logger"
	"nychousing-insights/pkg/metrics"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = redis.Nil

// Set stores a JSON-encoded value under key with the given expiration.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}

// Get loads the JSON value stored under key into dest. A missing key returns
// ErrCacheMiss.
func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return fmt.Errorf("failed to unmarshal value: %v", err)
	}
	return nil
}

// Delete removes key from the cache.
func Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return err
	}
	return nil
}

// FlushViews removes every cached view payload. The seeder calls it after an
// import so serving instances recompute against the new data instead of
// waiting out the TTL.
func FlushViews(ctx context.Context) (int, error) {
	deleted := 0
	for _, pattern := range []string{"insights:*", "meta:*"} {
		iter := RedisClient.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := Delete(ctx, iter.Val()); err != nil {
				return deleted, err
			}
			deleted++
		}
		if err := iter.Err(); err != nil {
			metrics.RedisErrorsTotal.WithLabelValues("scan").Inc()
			logger.GlobalLogger.Errorf("failed to scan keys %s: %v", pattern, err)
			return deleted, err
		}
	}
	return deleted, nil
}
