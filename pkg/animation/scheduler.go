// Package animation provides the timing primitives of the transition
// engine.
//
// # Core Components
//
//   - [Scheduler]: the single-threaded UI loop. Posted continuations and
//     frame tickers only ever run from [Scheduler.Tick], so everything
//     driven by the scheduler observes a strict, deterministic order.
//
//   - [Timeline]: eases a value from its current position to a
//     target over a duration with an easing [Curve].
//
//   - [PercentDrivenAnimator]: an interruptible timeline that a gesture can
//     scrub directly and later hand off to a time-driven completion.
//
//   - [Resist]: the friction curve that makes overdrag grow sub-linearly.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(animation.SystemClock{})
//	anim := animation.NewPercentDrivenAnimator(sched, 350*time.Millisecond)
//	anim.OnUpdate = func(p float64) { apply(p) }
//	anim.BeginInteractive()
//	anim.Update(0.4)
//	anim.Finish()
//	// once per frame:
//	sched.Tick()
package animation

import (
	"sync"
	"time"
)

// Scheduler is the cooperative executor every animation and coordinator
// runs on. All callbacks fire from Tick on the calling goroutine.
//
// Post is the only method that may be called from other goroutines; it is
// how background producers (device readers, timers) hand work to the loop.
type Scheduler struct {
	clock Clock

	mu    sync.Mutex
	queue []func()

	tickers map[*Ticker]struct{}
	order   []*Ticker
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock uses SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Post queues fn to run on the next Tick, after any previously posted work.
func (s *Scheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
}

// Tick runs posted continuations in FIFO order and then advances every
// active ticker. Work posted while draining runs on the following Tick.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	pending := s.queue
	s.queue = nil
	s.mu.Unlock()

	for _, fn := range pending {
		fn()
	}

	if len(s.order) == 0 {
		return
	}
	// Copy so tickers may start or stop others from inside callbacks.
	active := make([]*Ticker, len(s.order))
	copy(active, s.order)
	now := s.Now()
	for _, t := range active {
		if t.isActive && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// Idle reports whether no work is queued and no ticker is active.
func (s *Scheduler) Idle() bool {
	s.mu.Lock()
	queued := len(s.queue)
	s.mu.Unlock()
	return queued == 0 && len(s.order) == 0
}

// NewTicker creates an inactive ticker bound to s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

func (s *Scheduler) add(t *Ticker) {
	if _, ok := s.tickers[t]; ok {
		return
	}
	s.tickers[t] = struct{}{}
	s.order = append(s.order, t)
}

func (s *Scheduler) remove(t *Ticker) {
	if _, ok := s.tickers[t]; !ok {
		return
	}
	delete(s.tickers, t)
	for i, existing := range s.order {
		if existing == t {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Ticker calls a callback on each Scheduler tick while active.
//
// Ticker is the low-level timing primitive used by [Timeline].
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	start     time.Time
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.Now()
	t.scheduler.add(t)
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.remove(t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.Now().Sub(t.start)
}
