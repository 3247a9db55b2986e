package testing

import (
	"time"

	"go.uber.org/atomic"
)

// Epoch is the time every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that only moves when told to. It may be
// read from any goroutine, such as a device reader posting events.
type FakeClock struct {
	offset *atomic.Duration
}

// NewFakeClock returns a clock at Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{offset: atomic.NewDuration(0)}
}

// Now returns Epoch plus everything the clock has advanced.
func (c *FakeClock) Now() time.Time {
	return Epoch.Add(c.offset.Load())
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.offset.Add(d)
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.offset.Store(t.Sub(Epoch))
}

// Elapsed returns how far the clock has moved from Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.offset.Load()
}
