// Package testutil provides shared helpers for deterministic tests.
package testutil

import (
	"sync"
	"time"

	"bluewave/internal/domain"
)

// FixedClock is a clock pinned to a settable instant.
//
// Unlike domain.SystemClock, FixedClock never moves on its own, so the
// same test scenario produces identical dates and sale times on every
// run.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ domain.Clock = (*FixedClock)(nil)

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set pins the clock to a new instant.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
