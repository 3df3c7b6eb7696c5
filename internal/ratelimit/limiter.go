// Package ratelimit implements the per-client fixed-window request budget
// enforced by the first gating stage of the HTTP pipeline.
//
// Two implementations of [Limiter] are provided:
//   - [MemoryLimiter] is process-local, suitable for a single instance
//     and for tests;
//   - [RedisLimiter] is backed by a shared Redis store so that multiple
//     identical instances enforce one common budget.
package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether one more request from the given client identifier
// fits into the current window. Implementations must be safe for concurrent
// use and must increment atomically: two racing requests may not observe the
// same count.
type Limiter interface {
	// Allow records one request for key and reports whether it is within
	// the budget. The first request of a window starts a fresh count.
	Allow(ctx context.Context, key string) (bool, error)
}

// Config carries the window parameters shared by all implementations.
type Config struct {
	// Window is the fixed counting interval.
	Window time.Duration

	// Max is the number of requests allowed per key within one window.
	Max int64
}
