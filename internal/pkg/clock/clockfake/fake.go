// Package clockfake provides a manually driven clock for tests
package clockfake

import (
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-player/internal/pkg/clock"
)

// Clock is a clock.Clock that only moves when told to
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

var _ clock.Clock = (*Clock)(nil)

// New creates a fake clock set to t
func New(t time.Time) *Clock {
	return &Clock{now: t}
}

// Now returns the fake current time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
