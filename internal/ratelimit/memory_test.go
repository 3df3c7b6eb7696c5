package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBudget(t *testing.T) {
	limiter := NewMemoryLimiter(Config{Window: time.Minute, Max: 3})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should be allowed", i+1)
	}

	ok, err := limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, ok, "request over budget must be rejected")
}

func TestMemoryLimiterIsolatesClients(t *testing.T) {
	limiter := NewMemoryLimiter(Config{Window: time.Minute, Max: 1})
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.False(t, ok)

	// a different client identifier is unaffected
	ok, err = limiter.Allow(ctx, "client-b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	current := time.Now()
	limiter := NewMemoryLimiter(Config{Window: time.Minute, Max: 1})
	limiter.now = func() time.Time { return current }

	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	require.False(t, ok)

	// window elapses, the count starts fresh
	current = current.Add(time.Minute + time.Second)

	ok, err = limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterConcurrentCount(t *testing.T) {
	const workers = 50
	limiter := NewMemoryLimiter(Config{Window: time.Minute, Max: workers / 2})
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers/2, allowed)
}

func TestMemoryLimiterSweep(t *testing.T) {
	current := time.Now()
	limiter := NewMemoryLimiter(Config{Window: time.Minute, Max: 10})
	limiter.now = func() time.Time { return current }

	ctx := context.Background()
	_, err := limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	_, err = limiter.Allow(ctx, "client-b")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	limiter.Sweep()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.counters)
}

func TestMemoryLimiterSweepEvery(t *testing.T) {
	current := time.Now()
	limiter := NewMemoryLimiter(Config{Window: time.Minute, Max: 10})
	limiter.now = func() time.Time { return current }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := limiter.Allow(ctx, "client-a")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	go limiter.SweepEvery(ctx, time.Millisecond)

	assert.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.counters) == 0
	}, time.Second, 5*time.Millisecond)
}
