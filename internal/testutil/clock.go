package testutil

import (
	"sync"
	"time"
)

type pendingFunc struct {
	f       func()
	at      time.Duration
	stopped bool
	fired   bool
}

// ManualClock is a virtual clock whose scheduled callbacks only run when the
// test advances it. Callbacks run synchronously on the calling goroutine.
type ManualClock struct {
	pending []*pendingFunc
	now     time.Duration
	mu      sync.Mutex
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) func() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &pendingFunc{at: c.now + d, f: f}
	c.pending = append(c.pending, p)

	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()

		if p.fired || p.stopped {
			return false
		}

		p.stopped = true

		return true
	}
}

// Advance moves the clock forward by d, running every callback that becomes
// due in chronological order.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d

	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}

		c.now = next.at
		next.fired = true

		c.mu.Unlock()
		next.f()
		c.mu.Lock()
	}

	c.now = target
	c.mu.Unlock()
}

// Pending returns the number of callbacks that are scheduled but have not
// fired or been stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int

	for _, p := range c.pending {
		if !p.fired && !p.stopped {
			n++
		}
	}

	return n
}

func (c *ManualClock) nextDue(target time.Duration) *pendingFunc {
	var next *pendingFunc

	for _, p := range c.pending {
		if p.fired || p.stopped || p.at > target {
			continue
		}

		if next == nil || p.at < next.at {
			next = p
		}
	}

	return next
}
