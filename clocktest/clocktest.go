// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package clocktest contains a deterministic [anytime.Clock] for
// testing deadline behaviors without depending on the speed of the host.
package clocktest

import (
	"sync"
	"time"

	"vawter.tech/anytime"
)

// A Clock advances by a fixed tick every time it is read. It may also
// be advanced manually, for instance from within a step that should
// appear to be slow.
type Clock struct {
	mu struct {
		sync.Mutex
		now  time.Time
		tick time.Duration
	}
}

var _ anytime.Clock = (*Clock)(nil)

// New constructs a Clock that starts at the given instant and advances
// by tick after each call to [Clock.Now]. A zero tick yields a clock
// that only moves when [Clock.Advance] is called.
func New(start time.Time, tick time.Duration) *Clock {
	c := &Clock{}
	c.mu.now = start
	c.mu.tick = tick
	return c
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mu.now = c.mu.now.Add(d)
}

// Now returns the current instant and then advances the clock by its
// tick.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ret := c.mu.now
	c.mu.now = c.mu.now.Add(c.mu.tick)
	return ret
}

// Peek returns the current instant without advancing the clock.
func (c *Clock) Peek() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mu.now
}
