package presentation

import (
	"time"

	"github.com/go-drift/transit/pkg/animation"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/transition"
)

// interceptBlend is the drag distance over which an intercepted pose
// blends into the strategy's own pose.
const interceptBlend = 48.0

// Session is one transition of the presented view.
type Session struct {
	ID        uint64
	Direction Direction
	// Edge is the dismissal edge chosen when the session began.
	Edge           graphics.Edge
	PermittedEdges graphics.EdgeSet
	// TranslationOffset is subtracted from raw translations, set when a
	// scroll view hands its drag over mid-gesture.
	TranslationOffset graphics.Offset
	LastTranslation   graphics.Offset
	// InteractiveStart is true for sessions begun by a drag.
	InteractiveStart bool
	// WantsInteractiveDismissal is forced while a keyboard covers content.
	WantsInteractiveDismissal bool
	// Rest is the pose restored by a cancel.
	Rest transition.Visual
	// Vetoed is set when the host refused the dismissal.
	Vetoed bool
	Start  time.Time

	animator *animation.PercentDrivenAnimator
	oneShot  *transition.OneShot

	drag  transition.Visual
	ended bool

	// Completion of an interactive session lerps from the pose at the
	// moment of release to the end pose.
	from        transition.Visual
	fromPercent float64
	end         transition.Visual

	intercepted bool
	interceptAt transition.Visual
	seed        graphics.Offset
	performed   bool
}

// completionVisual returns the pose for animator percent p while finishing
// (toward 1) or cancelling (toward 0).
func (s *Session) completionVisual(p float64, finishing bool) transition.Visual {
	var t float64
	if finishing {
		if s.fromPercent >= 1 {
			t = 1
		} else {
			t = (p - s.fromPercent) / (1 - s.fromPercent)
		}
	} else {
		if s.fromPercent <= 0 {
			t = 1
		} else {
			t = (s.fromPercent - p) / s.fromPercent
		}
	}
	target := s.Rest
	if finishing {
		target = s.end
	}
	return transition.LerpVisual(s.from, target, graphics.Clamp(t, 0, 1))
}

// effective returns the translation the strategy sees.
func (s *Session) effective(adjusted graphics.Offset) graphics.Offset {
	return adjusted.Add(s.seed)
}

// dragVisual blends an intercepted pose into the strategy pose over the
// first interceptBlend points of the drag.
func (s *Session) dragVisual(target transition.Visual, adjusted graphics.Offset) transition.Visual {
	if !s.intercepted {
		return target
	}
	w := graphics.Clamp(adjusted.Length()/interceptBlend, 0, 1)
	return transition.LerpVisual(s.interceptAt, target, w)
}

// seedTranslation finds the translation toward ctx.Edge at which strategy
// reports progress p. Progress is monotone along the edge direction, so a
// bisection is enough.
func seedTranslation(strategy transition.Strategy, ctx transition.Context, p float64) graphics.Offset {
	if p <= 0 {
		return graphics.Offset{}
	}
	dir := ctx.Edge.Direction()
	hi := 4 * max(ctx.Container.Width(), ctx.Container.Height(), ctx.Options.MatchedGeometryDistance)
	if strategy.Progress(ctx, dir.Scale(hi)) < p {
		return dir.Scale(hi)
	}
	lo := 0.0
	for range 48 {
		mid := (lo + hi) / 2
		if strategy.Progress(ctx, dir.Scale(mid)) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return dir.Scale(hi)
}
