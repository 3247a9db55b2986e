// Package gestures turns pointer input into the drag samples the transition
// engine consumes.
//
// A [Recognizer] claims a pointer once it moves past the touch slop and
// emits [Sample] values in delivery order. A [Tracker] then derives the
// per-sample delta and the translation relative to a movable baseline.
package gestures

import (
	"fmt"

	"github.com/go-drift/transit/pkg/graphics"
)

// Phase is the recognizer phase attached to a drag sample.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ParsePhase parses the String form of a phase.
func ParsePhase(s string) (Phase, error) {
	for p := PhaseBegan; p <= PhaseFailed; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("gestures: unknown phase %q", s)
}

// IsTerminal reports whether no further samples follow in the same gesture.
func (p Phase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseCancelled || p == PhaseFailed
}

// Sample is one drag observation in the presented view's coordinate space.
// Translation is cumulative since the gesture began; Velocity is in
// points per second.
type Sample struct {
	Translation graphics.Offset
	Velocity    graphics.Offset
	Phase       Phase
}
