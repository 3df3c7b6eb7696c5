package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter backed by a shared Redis store.
// INCR is atomic, so concurrent requests from any number of server instances
// observe a single consistent count per key.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
}

// NewRedisLimiter constructs a limiter on top of the given Redis client.
func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		cfg:    cfg,
		prefix: "ratelimit:",
	}
}

// Allow implements [Limiter]. The counter key expires together with its
// window, so an idle client costs nothing after the window elapses.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	counterKey := r.prefix + key

	count, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit: incrementing %q: %w", counterKey, err)
	}

	// Only the request that opened the window sets the expiry; NX keeps
	// later requests from sliding it.
	if err := r.client.ExpireNX(ctx, counterKey, r.cfg.Window).Err(); err != nil {
		return false, fmt.Errorf("ratelimit: setting window expiry on %q: %w", counterKey, err)
	}

	return count <= r.cfg.Max, nil
}
