package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

type Store struct {
	client CacheClient
}

func NewStore(client CacheClient) *Store {
	return &Store{client: client}
}

// Set stores value as JSON under key. A zero expiration keeps the key forever.
func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return newCacheError("marshal", key, err, false)
	}
	start := time.Now()
	err = s.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return newCacheError("set", key, err, true)
	}
	return nil
}

// Get unmarshals the value under key into dest. A missing key yields
// ErrCacheMiss and is not logged.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return newCacheError("get", key, err, true)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return newCacheError("unmarshal", key, err, false)
	}
	return nil
}
