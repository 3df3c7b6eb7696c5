package ratelimit

import (
	"context"
	"sync"
	"time"
)

type windowCounter struct {
	count   int64
	resetAt time.Time
}

// MemoryLimiter is a process-local fixed-window limiter. Counters reset
// lazily when their window elapses; entries of clients that went quiet are
// dropped by [MemoryLimiter.Sweep].
type MemoryLimiter struct {
	cfg Config

	mu       sync.Mutex
	counters map[string]*windowCounter

	now func() time.Time // swapped in tests
}

// NewMemoryLimiter constructs a limiter for the given window configuration.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:      cfg,
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

// Allow implements [Limiter].
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	counter, ok := m.counters[key]
	if !ok || !now.Before(counter.resetAt) {
		m.counters[key] = &windowCounter{count: 1, resetAt: now.Add(m.cfg.Window)}
		return m.cfg.Max >= 1, nil
	}

	counter.count++
	return counter.count <= m.cfg.Max, nil
}

// Sweep drops every counter whose window has elapsed. Call it periodically
// from a background goroutine to bound memory on long-running processes.
func (m *MemoryLimiter) Sweep() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, counter := range m.counters {
		if !now.Before(counter.resetAt) {
			delete(m.counters, key)
		}
	}
}

// SweepEvery runs [MemoryLimiter.Sweep] on the given interval until ctx is
// cancelled. Run it in its own goroutine.
func (m *MemoryLimiter) SweepEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
