package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the subset of the Redis client the store needs.
// *redis.Client satisfies it.
type CacheClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// CacheOperations stores JSON values under string keys.
type CacheOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
}
