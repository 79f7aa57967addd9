package store

import (
	"sync/atomic"
	"time"
)

// clock issues strictly increasing Unix-nanosecond timestamps, so two back-to-back writes to
// the same coordinate never collide even when the wall clock does not advance between them.
type clock struct {
	last atomic.Int64
	now  func() time.Time
}

func newClock(now func() time.Time) *clock {
	if now == nil {
		now = time.Now
	}
	return &clock{now: now}
}

func (c *clock) next() int64 {
	for {
		prev := c.last.Load()
		ts := c.now().UnixNano()
		if ts <= prev {
			ts = prev + 1
		}
		if c.last.CompareAndSwap(prev, ts) {
			return ts
		}
	}
}
