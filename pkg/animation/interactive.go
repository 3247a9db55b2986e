package animation

import (
	"fmt"
	"time"
)

// InteractiveState is the lifecycle state of a [PercentDrivenAnimator].
//
//	Idle ──Start──► Committed ─────────────────────────► Finished
//	  │                 │ (interruptible)
//	  └─BeginInteractive┴──► Interactive ──Finish──► Finishing ──► Finished
//	                              │
//	                              └──Cancel──► Cancelling ──► Cancelled
//
// Finishing and Cancelling may be taken back to Interactive when the
// animator is interruptible. Finished and Cancelled are terminal.
type InteractiveState int

const (
	AnimatorIdle InteractiveState = iota
	AnimatorCommitted
	AnimatorInteractive
	AnimatorFinishing
	AnimatorCancelling
	AnimatorFinished
	AnimatorCancelled
)

func (s InteractiveState) String() string {
	switch s {
	case AnimatorIdle:
		return "idle"
	case AnimatorCommitted:
		return "committed"
	case AnimatorInteractive:
		return "interactive"
	case AnimatorFinishing:
		return "finishing"
	case AnimatorCancelling:
		return "cancelling"
	case AnimatorFinished:
		return "finished"
	case AnimatorCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("InteractiveState(%d)", int(s))
	}
}

// IsTerminal reports whether s is Finished or Cancelled.
func (s InteractiveState) IsTerminal() bool {
	return s == AnimatorFinished || s == AnimatorCancelled
}

// minCompletionSpeed floors the speed used to derive completion durations
// so that a cancel from a nearly complete timeline still terminates.
const minCompletionSpeed = 0.1

// PercentDrivenAnimator is a reversible 0..1 timeline that can be scrubbed
// by a gesture and then handed to a time-driven completion without a jump.
//
// A timeline is single use: once it reaches Finished or Cancelled every
// further call is ignored and a new animator must be allocated.
//
// Update, Finish and Cancel are silent no-ops in states where they do not
// apply. Gesture samples routinely arrive after a session has already
// been resolved, and those calls must not disturb it.
type PercentDrivenAnimator struct {
	// Duration is the length of a full 0 to 1 run at speed 1.
	Duration time.Duration

	// CompletionCurve eases the time-driven portions of the timeline.
	CompletionCurve Curve

	// WantsInteractiveStart defers the first frame of Start by one
	// scheduler turn so a gesture may take the timeline over before it
	// renders.
	WantsInteractiveStart bool

	// Interruptible allows BeginInteractive while a time-driven completion
	// is already running.
	Interruptible bool

	// OnUpdate receives the percent complete, synchronously from Update and
	// from every animation frame.
	OnUpdate func(percent float64)

	// OnComplete fires exactly once, with true when the timeline finished
	// at 1 and false when it was cancelled back to 0.
	OnComplete func(finished bool)

	// OnStateChange is optional.
	OnStateChange func(InteractiveState)

	scheduler    *Scheduler
	timeline     *Timeline
	state        InteractiveState
	percent      float64
	speed        float64
	pendingStart bool
	unsubscribe  []func()
}

// NewPercentDrivenAnimator creates an idle animator driven by sched.
func NewPercentDrivenAnimator(sched *Scheduler, duration time.Duration) *PercentDrivenAnimator {
	a := &PercentDrivenAnimator{
		Duration:        duration,
		CompletionCurve: EaseOut,
		scheduler:       sched,
		speed:           1,
	}
	a.timeline = NewTimeline(sched)
	a.unsubscribe = append(a.unsubscribe,
		a.timeline.OnValue(a.timelineMoved),
		a.timeline.OnStatus(a.timelineStatusChanged),
	)
	return a
}

// State returns the current lifecycle state.
func (a *PercentDrivenAnimator) State() InteractiveState {
	return a.state
}

// PercentComplete returns the timeline position in [0, 1].
func (a *PercentDrivenAnimator) PercentComplete() float64 {
	return a.percent
}

// CompletionSpeed returns the speed of the last requested completion.
func (a *PercentDrivenAnimator) CompletionSpeed() float64 {
	return a.speed
}

// IsInteractive reports whether a gesture currently drives the timeline.
func (a *PercentDrivenAnimator) IsInteractive() bool {
	return a.state == AnimatorInteractive
}

// IsRunning reports whether a time-driven run is in progress or pending.
func (a *PercentDrivenAnimator) IsRunning() bool {
	switch a.state {
	case AnimatorCommitted, AnimatorFinishing, AnimatorCancelling:
		return true
	}
	return false
}

// CanIntercept reports whether BeginInteractive would succeed.
func (a *PercentDrivenAnimator) CanIntercept() bool {
	switch a.state {
	case AnimatorIdle, AnimatorInteractive:
		return true
	case AnimatorCommitted:
		return a.pendingStart || a.Interruptible
	case AnimatorFinishing, AnimatorCancelling:
		return a.Interruptible
	}
	return false
}

// Start commits a time-driven run from the current percent to 1.
func (a *PercentDrivenAnimator) Start() {
	if a.state != AnimatorIdle {
		return
	}
	a.speed = 1
	a.setState(AnimatorCommitted)
	if !a.WantsInteractiveStart {
		a.runTo(1, a.remaining(1))
		return
	}
	a.pendingStart = true
	a.scheduler.Post(func() {
		if a.state != AnimatorCommitted || !a.pendingStart {
			return
		}
		a.pendingStart = false
		a.runTo(1, a.remaining(1))
	})
}

// BeginInteractive hands the timeline to a gesture, keeping the current
// percent. It returns false when the timeline cannot be intercepted.
func (a *PercentDrivenAnimator) BeginInteractive() bool {
	if !a.CanIntercept() {
		return false
	}
	if a.state == AnimatorInteractive {
		return true
	}
	a.pendingStart = false
	if a.timeline.Stop() {
		a.percent = clampUnit(a.timeline.Value)
	}
	a.setState(AnimatorInteractive)
	return true
}

// Update scrubs the timeline to percent. Only valid while interactive.
func (a *PercentDrivenAnimator) Update(percent float64) {
	if a.state != AnimatorInteractive {
		return
	}
	a.percent = clampUnit(percent)
	if a.OnUpdate != nil {
		a.OnUpdate(a.percent)
	}
}

// Finish animates from the current percent to 1 at speed 1, or, when a
// cancel is being reversed, at a speed proportional to the remaining
// distance.
func (a *PercentDrivenAnimator) Finish() {
	switch a.state {
	case AnimatorIdle, AnimatorInteractive:
		a.speed = 1
	case AnimatorCancelling:
		a.speed = 1 - a.percent
	default:
		return
	}
	a.pendingStart = false
	a.setState(AnimatorFinishing)
	a.runTo(1, a.remaining(1))
}

// Cancel animates back to 0 with a completion speed of 1 - percent.
func (a *PercentDrivenAnimator) Cancel() {
	switch a.state {
	case AnimatorIdle, AnimatorCommitted, AnimatorInteractive, AnimatorFinishing:
	default:
		return
	}
	if a.timeline.Stop() {
		a.percent = clampUnit(a.timeline.Value)
	}
	a.pendingStart = false
	a.speed = 1 - a.percent
	a.setState(AnimatorCancelling)
	a.runTo(0, a.remaining(0))
}

// CompletionDuration returns how long a completion toward target would
// take from the current percent at the current speed.
func (a *PercentDrivenAnimator) CompletionDuration(target float64) time.Duration {
	return a.remaining(target)
}

// Dispose stops any run and detaches from the scheduler. Callbacks do not
// fire afterwards.
func (a *PercentDrivenAnimator) Dispose() {
	for _, fn := range a.unsubscribe {
		fn()
	}
	a.unsubscribe = nil
	a.timeline.Dispose()
	a.pendingStart = false
}

func (a *PercentDrivenAnimator) remaining(target float64) time.Duration {
	distance := target - a.percent
	if distance < 0 {
		distance = -distance
	}
	speed := max(a.speed, minCompletionSpeed)
	return time.Duration(distance * float64(a.Duration) / speed)
}

func (a *PercentDrivenAnimator) runTo(target float64, d time.Duration) {
	a.timeline.Curve = a.CompletionCurve
	a.timeline.Value = a.percent
	a.timeline.RunTo(target, d)
}

func (a *PercentDrivenAnimator) timelineMoved() {
	if !a.IsRunning() {
		return
	}
	a.percent = clampUnit(a.timeline.Value)
	if a.OnUpdate != nil {
		a.OnUpdate(a.percent)
	}
}

func (a *PercentDrivenAnimator) timelineStatusChanged(status TimelineStatus) {
	switch {
	case status == TimelineAtEnd && (a.state == AnimatorFinishing || a.state == AnimatorCommitted):
		a.complete(AnimatorFinished)
	case status == TimelineAtStart && a.state == AnimatorCancelling:
		a.complete(AnimatorCancelled)
	}
}

func (a *PercentDrivenAnimator) complete(state InteractiveState) {
	a.setState(state)
	a.timeline.Stop()
	if a.OnComplete != nil {
		a.OnComplete(state == AnimatorFinished)
	}
}

func (a *PercentDrivenAnimator) setState(state InteractiveState) {
	if a.state == state {
		return
	}
	a.state = state
	if a.OnStateChange != nil {
		a.OnStateChange(state)
	}
}
