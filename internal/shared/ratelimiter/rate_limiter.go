// Package ratelimiter throttles repeated requests per key with a Redis fixed window.
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter allows at most limit hits per key within each window.
type RateLimiter struct {
	rdb       *redis.Client
	limit     int64
	window    time.Duration
	namespace string
}

// NewRateLimiter creates a RateLimiter. Keys are stored as "<namespace>:<key>".
// If namespace is empty, it uses "ratelimit".
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, namespace string) *RateLimiter {
	if namespace == "" {
		namespace = "ratelimit"
	}
	return &RateLimiter{
		rdb:       rdb,
		limit:     int64(limit),
		window:    window,
		namespace: namespace,
	}
}

// Allow counts a hit for key and reports whether it is within the limit.
// The window starts at the first hit and is not extended by later ones.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := rl.namespace + ":" + key

	count, err := rl.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}
	if count == 1 {
		if err := rl.rdb.Expire(ctx, k, rl.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set window expiry: %w", err)
		}
	}
	return count <= rl.limit, nil
}
