package transition

import (
	"math"

	"github.com/go-drift/transit/pkg/graphics"
)

// Decision holds the pure predicates that steer an interactive transition.
// Zero thresholds fall back to their defaults.
type Decision struct {
	Edges           graphics.EdgeSet
	CommitThreshold float64
	FlingVelocity   float64
}

// ShouldBegin reports whether a drag may start a transition and toward
// which permitted edge. The drag must point toward the edge (its
// translation, or its velocity when it has not moved yet) and its latest
// delta must be at least as large along the edge's axis as across it, so a
// diagonal swipe goes to whichever consumer owns the dominant axis.
func (d Decision) ShouldBegin(translation, delta, velocity graphics.Offset) (graphics.Edge, bool) {
	heading := translation
	if heading.IsZero() {
		heading = velocity
	}
	for _, edge := range d.Edges.Edges() {
		if edge.Project(heading) <= 0 {
			continue
		}
		axis := edge.Axis()
		if math.Abs(delta.Component(axis.Orthogonal())) <= math.Abs(delta.Component(axis)) {
			return edge, true
		}
	}
	return 0, false
}

// ShouldCancel reports whether the drag has come back past its starting
// point relative to edge, or sits exactly on it while still moving back.
func (d Decision) ShouldCancel(edge graphics.Edge, translation, delta graphics.Offset) bool {
	p := edge.Project(translation)
	return p < 0 || (p == 0 && edge.Project(delta) < 0)
}

// ShouldCommit applies the commit rule: past the threshold with any push
// toward the edge, or a fling whose magnitude reaches FlingVelocity in
// either direction. velocity is projected on the dismissal direction.
func (d Decision) ShouldCommit(percent, velocity float64) bool {
	return (percent >= d.threshold() && velocity > 0) || math.Abs(velocity) >= d.fling()
}

func (d Decision) threshold() float64 {
	if d.CommitThreshold > 0 {
		return d.CommitThreshold
	}
	return DefaultCommitThreshold
}

func (d Decision) fling() float64 {
	if d.FlingVelocity > 0 {
		return d.FlingVelocity
	}
	return DefaultFlingVelocity
}
