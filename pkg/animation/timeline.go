package animation

import (
	"fmt"
	"time"
)

// TimelineStatus says where a [Timeline] is and which way it is heading.
type TimelineStatus int

const (
	// TimelineAtStart means the timeline rests at 0.
	TimelineAtStart TimelineStatus = iota
	// TimelineForward means a run toward a larger value is in progress.
	TimelineForward
	// TimelineReverse means a run toward a smaller or equal value is in
	// progress.
	TimelineReverse
	// TimelineAtEnd means the timeline rests at 1.
	TimelineAtEnd
)

func (s TimelineStatus) String() string {
	switch s {
	case TimelineAtStart:
		return "at-start"
	case TimelineForward:
		return "forward"
	case TimelineReverse:
		return "reverse"
	case TimelineAtEnd:
		return "at-end"
	default:
		return fmt.Sprintf("TimelineStatus(%d)", int(s))
	}
}

// Timeline eases Value from wherever it is to a target, one scheduler
// frame at a time. It is the time-driven half of a
// [PercentDrivenAnimator] and, like the scheduler, is not safe for
// concurrent use.
type Timeline struct {
	// Value is the current position, normally in [0, 1].
	Value float64

	// Curve eases each run. Nil is linear.
	Curve Curve

	scheduler *Scheduler
	ticker    *Ticker
	status    TimelineStatus
	from      float64
	to        float64
	duration  time.Duration
	observers []timelineObserver
	nextID    int
}

type timelineObserver struct {
	id     int
	value  func()
	status func(TimelineStatus)
}

// NewTimeline creates a timeline at 0 driven by sched.
func NewTimeline(sched *Scheduler) *Timeline {
	return &Timeline{scheduler: sched, Curve: LinearCurve}
}

// RunTo starts a run from Value to target lasting d, replacing any run in
// progress. A non-positive d lands on target at the next frame.
func (tl *Timeline) RunTo(target float64, d time.Duration) {
	tl.Stop()
	tl.from = tl.Value
	tl.to = target
	tl.duration = d
	if target > tl.Value {
		tl.setStatus(TimelineForward)
	} else {
		tl.setStatus(TimelineReverse)
	}
	tl.ticker = tl.scheduler.NewTicker(tl.frame)
	tl.ticker.Start()
}

// Stop halts the run at the current Value and reports whether one was in
// progress. The status keeps its direction; whoever takes Value over
// owns it from here.
func (tl *Timeline) Stop() bool {
	if tl.ticker == nil {
		return false
	}
	tl.ticker.Stop()
	tl.ticker = nil
	return true
}

// Running reports whether a run is in progress.
func (tl *Timeline) Running() bool {
	return tl.ticker != nil
}

// Status returns the current status.
func (tl *Timeline) Status() TimelineStatus {
	return tl.status
}

// OnValue registers fn to run after every frame that moves Value. The
// returned func removes it.
func (tl *Timeline) OnValue(fn func()) (remove func()) {
	return tl.observe(timelineObserver{value: fn})
}

// OnStatus registers fn to run whenever the status changes. The returned
// func removes it.
func (tl *Timeline) OnStatus(fn func(TimelineStatus)) (remove func()) {
	return tl.observe(timelineObserver{status: fn})
}

// Dispose stops the run and drops every observer.
func (tl *Timeline) Dispose() {
	tl.Stop()
	tl.observers = nil
}

func (tl *Timeline) observe(o timelineObserver) func() {
	tl.nextID++
	o.id = tl.nextID
	tl.observers = append(tl.observers, o)
	return func() {
		for i := range tl.observers {
			if tl.observers[i].id == o.id {
				tl.observers = append(tl.observers[:i], tl.observers[i+1:]...)
				return
			}
		}
	}
}

func (tl *Timeline) frame(elapsed time.Duration) {
	t := 1.0
	if tl.duration > 0 {
		t = min(float64(elapsed)/float64(tl.duration), 1)
	}
	switch {
	case t >= 1:
		tl.Value = tl.to
	case tl.Curve != nil:
		tl.Value = LerpFloat64(tl.from, tl.to, tl.Curve(t))
	default:
		tl.Value = LerpFloat64(tl.from, tl.to, t)
	}
	for _, o := range tl.snapshot() {
		if o.value != nil {
			o.value()
		}
	}
	if t < 1 {
		return
	}
	tl.Stop()
	switch {
	case tl.Value <= 0:
		tl.setStatus(TimelineAtStart)
	case tl.Value >= 1:
		tl.setStatus(TimelineAtEnd)
	}
}

func (tl *Timeline) setStatus(s TimelineStatus) {
	if tl.status == s {
		return
	}
	tl.status = s
	for _, o := range tl.snapshot() {
		if o.status != nil {
			o.status(s)
		}
	}
}

// snapshot lets observers remove themselves while being notified.
func (tl *Timeline) snapshot() []timelineObserver {
	return append([]timelineObserver(nil), tl.observers...)
}
