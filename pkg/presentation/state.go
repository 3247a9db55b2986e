// Package presentation orchestrates the interactive presentation and
// dismissal of a single presented view.
//
// A [Coordinator] owns at most one [Session] at a time. Drag samples enter
// through [Coordinator.HandleSample] (or [Coordinator.HandleScrollSample]
// for drags taken over from nested scroll views) and drive the state
// machine
//
//	Idle ─► Tracking ─► Interactive ─┬─► Committing ─► Idle
//	                        │        └─► Cancelling ─► Idle
//	                        └─(reversal)─► Tracking
//
// The coordinator never touches views itself. It tells a [Host] what to
// draw, when to lay out and when to structurally present or dismiss, and it
// does all of this from the [animation.Scheduler] it was created with.
package presentation

import (
	"fmt"
	"time"

	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/layout"
	"github.com/go-drift/transit/pkg/transition"
)

// State is the coordinator's position in its state machine.
type State int

const (
	StateIdle State = iota
	StateTracking
	StateInteractive
	StateCommitting
	StateCancelling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateInteractive:
		return "interactive"
	case StateCommitting:
		return "committing"
	case StateCancelling:
		return "cancelling"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Direction is re-exported from transition for host implementations.
type Direction = transition.Direction

const (
	Presenting = transition.Presenting
	Dismissing = transition.Dismissing
)

// Host is the external presentation host. Every method is called on the
// scheduler's loop. Panics are recovered and reported; the coordinator
// carries on as if the call had returned.
type Host interface {
	// PresentedViewTransformed applies a frame's visual state.
	PresentedViewTransformed(v transition.Visual)
	// ApplyLayout sets the presented view's frame. Never called with a
	// zero Result.
	ApplyLayout(r layout.Result)
	TransitionWillBegin(d Direction)
	TransitionDidEnd(d Direction, completed bool)
	// PerformPresentation structurally inserts the presented view. Called
	// exactly once per presentation.
	PerformPresentation()
	// PerformDismissal structurally removes the presented view. Called
	// exactly once per committed dismissal.
	PerformDismissal()
	// ShouldAllowDismiss may veto an interactive dismissal.
	ShouldAllowDismiss() bool
}

// InteractionObserver is optionally implemented by a Host that animates
// content alongside an interactive transition.
type InteractionObserver interface {
	InteractionDidChange(percent float64)
}

// Anchor is the source element a presentation grows from.
type Anchor struct {
	Rect         graphics.Rect
	CornerRadius float64
}

// Config describes one presentation.
type Config struct {
	Kind    transition.Kind
	Options transition.Options
	// Layout carries the variant's geometry parameters: ideal size,
	// aspect ratio, insets, detent, anchor and corner radius. Container,
	// safe area and keyboard come from the Set* methods.
	Layout layout.Params
	// Immediate skips the presentation animation.
	Immediate bool
}

// EventPhase says whether an Event opens or closes a session.
type EventPhase int

const (
	EventBegan EventPhase = iota
	EventEnded
	EventVetoed
)

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeCancelled
	OutcomeIntercepted
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeIntercepted:
		return "intercepted"
	case OutcomeAborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Event reports session lifecycle to an Observer.
type Event struct {
	Session     uint64
	Kind        transition.Kind
	Direction   Direction
	Interactive bool
	Phase       EventPhase
	Outcome     Outcome
	// Elapsed is the session's age when the event fired.
	Elapsed time.Duration
}

// Observer receives lifecycle events, for metrics and tracing.
type Observer interface {
	TransitionEvent(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) TransitionEvent(e Event) { f(e) }
