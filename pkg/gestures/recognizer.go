package gestures

import (
	"math"

	"github.com/go-drift/transit/pkg/graphics"
)

// Recognizer is a single-pointer pan recognizer. It waits until the pointer
// moves past Slop, asks ShouldAccept whether to claim the drag, and then
// reports Began, Changed and a terminal sample through OnSample.
//
// Translation is measured from the pointer-down position, so the first
// Began sample already carries the slop distance.
type Recognizer struct {
	// Slop is the distance required before recognition. Zero uses
	// DefaultTouchSlop.
	Slop float64

	// Axis restricts recognition when AxisLocked is set: a drag whose
	// orthogonal movement passes the slop first is rejected.
	Axis       graphics.Axis
	AxisLocked bool

	// ShouldAccept is called once the slop is exceeded. Returning false
	// rejects the pointer so another consumer (a scroll view) can own it.
	ShouldAccept func(translation graphics.Offset) bool

	// OnSample receives every recognized sample in delivery order.
	OnSample func(Sample)

	pointer  int64
	start    graphics.Offset
	last     graphics.Offset
	velocity VelocityTracker
	tracking bool
	accepted bool
	rejected bool
}

// State reports whether the recognizer is tracking a pointer and whether it
// has claimed the drag.
func (r *Recognizer) State() (tracking, accepted bool) {
	return r.tracking, r.accepted
}

// HandleEvent feeds a raw pointer event to the recognizer. Events for other
// pointers are ignored while one is being tracked.
func (r *Recognizer) HandleEvent(event PointerEvent) {
	if event.Phase == PointerPhaseDown {
		if r.tracking {
			return
		}
		r.pointer = event.PointerID
		r.start = event.Position
		r.last = event.Position
		r.velocity.Reset(event.Position, event.Time)
		r.tracking = true
		r.accepted = false
		r.rejected = false
		return
	}
	if !r.tracking || event.PointerID != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.finish(event, PhaseEnded)
	case PointerPhaseCancel:
		r.finish(event, PhaseCancelled)
	}
}

// Reset abandons the tracked pointer without emitting a sample.
func (r *Recognizer) Reset() {
	r.tracking = false
	r.accepted = false
	r.rejected = false
}

func (r *Recognizer) slop() float64 {
	if r.Slop > 0 {
		return r.Slop
	}
	return DefaultTouchSlop
}

func (r *Recognizer) handleMove(event PointerEvent) {
	velocity := r.velocity.Add(event.Position, event.Time)
	r.last = event.Position
	if r.rejected {
		return
	}
	total := event.Position.Sub(r.start)

	if !r.accepted {
		primary, orthogonal := total.Length(), 0.0
		if r.AxisLocked {
			primary = math.Abs(total.Component(r.Axis))
			orthogonal = math.Abs(total.Component(r.Axis.Orthogonal()))
		}
		switch {
		case primary > r.slop() && primary >= orthogonal:
			if r.ShouldAccept != nil && !r.ShouldAccept(total) {
				r.rejected = true
				return
			}
			r.accepted = true
			r.emit(Sample{Translation: total, Velocity: velocity, Phase: PhaseBegan})
		case orthogonal > r.slop():
			r.rejected = true
		}
		return
	}
	r.emit(Sample{Translation: total, Velocity: velocity, Phase: PhaseChanged})
}

func (r *Recognizer) finish(event PointerEvent, phase Phase) {
	accepted := r.accepted
	r.tracking = false
	r.accepted = false
	if !accepted {
		return
	}
	velocity := r.velocity.Velocity()
	if phase == PhaseCancelled {
		velocity = graphics.Offset{}
	}
	r.emit(Sample{Translation: r.last.Sub(r.start), Velocity: velocity, Phase: phase})
}

func (r *Recognizer) emit(s Sample) {
	if r.OnSample != nil {
		r.OnSample(s)
	}
}
