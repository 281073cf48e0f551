package game

import (
	"sort"
	"sync"
	"time"
)

// CancelToken stops a scheduled callback. Cancel reports whether the
// callback was still pending.
type CancelToken interface {
	Cancel() bool
}

// Clock schedules delayed callbacks. Callbacks may run on any goroutine.
type Clock interface {
	After(d time.Duration, fn func()) CancelToken
}

type SystemClock struct{}

func (SystemClock) After(d time.Duration, fn func()) CancelToken {
	return systemTimer{t: time.AfterFunc(d, fn)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) Cancel() bool {
	return s.t.Stop()
}

// ManualClock only moves when Advance is called. Due callbacks run on the
// caller's goroutine, in deadline order, without the clock's lock held.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock     *ManualClock
	at        time.Time
	seq       int
	fn        func()
	done      bool
	cancelled bool
}

func (t *manualTimer) Cancel() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) After(d time.Duration, fn func()) CancelToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now.Add(d), seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing everything that falls due.
// Callbacks scheduled by a firing callback run too if they are due.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		c.prune()
		if len(c.timers) == 0 || c.timers[0].at.After(target) {
			c.now = target
			c.mu.Unlock()
			return
		}
		next := c.timers[0]
		c.timers = c.timers[1:]
		next.done = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// Pending counts callbacks that have neither fired nor been cancelled.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prune()
	return len(c.timers)
}

// prune drops cancelled timers and sorts the rest. Callers hold c.mu.
func (c *ManualClock) prune() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
}
