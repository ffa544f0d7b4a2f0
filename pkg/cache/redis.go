package cache

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"nychousing-insights/pkg/config"
	"nychousing-insights/pkg/logger"
	"nychousing-insights/pkg/metrics"
)

var RedisClient *redis.Client

// InitRedis connects the package-level Redis client using the given
// configuration and verifies the connection with a ping.
func InitRedis(cfg *config.Config) error {
	opts := &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
	}

	if cfg.Redis.TLSEnabled {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.Redis.TLSCertFile != "" {
			pem, err := os.ReadFile(cfg.Redis.TLSCertFile)
			if err != nil {
				return fmt.Errorf("failed to read Redis TLS certificate: %v", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return fmt.Errorf("failed to parse Redis TLS certificate")
			}
			tlsConfig.RootCAs = pool
		}
		opts.TLSConfig = tlsConfig
	}

	RedisClient = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := RedisClient.Ping(ctx).Result()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return nil
}

// Ping reports whether the Redis connection is alive.
func Ping(ctx context.Context) error {
	if RedisClient == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	start := time.Now()
	_, err := RedisClient.Ping(ctx).Result()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
	}
	return err
}

// CloseRedis closes the package-level Redis client if it was initialized.
func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
	}
}
