// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides the current time. Cooldowns and cache idle tracking read
// time exclusively through it so tests can drive them deterministically.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system clock
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
