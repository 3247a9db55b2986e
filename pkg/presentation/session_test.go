package presentation

import (
	"math"
	"testing"

	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/transition"
)

func testContext(edge graphics.Edge) transition.Context {
	return transition.Context{
		Container: graphics.RectFromLTWH(0, 0, 400, 800),
		Frame:     graphics.RectFromLTWH(0, 100, 400, 700),
		Source:    graphics.RectFromLTWH(20, 20, 100, 100),
		Edge:      edge,
		Options:   transition.DefaultOptions(),
	}
}

func TestSeedTranslationInvertsProgress(t *testing.T) {
	for _, kind := range []transition.Kind{transition.KindSlide, transition.KindCard, transition.KindMatchedGeometry} {
		strategy, _ := transition.Builtin(kind)
		for _, edge := range []graphics.Edge{graphics.EdgeBottom, graphics.EdgeTrailing} {
			ctx := testContext(edge)
			seed := seedTranslation(strategy, ctx, 0.3)
			if got := strategy.Progress(ctx, seed); math.Abs(got-0.3) > 1e-6 {
				t.Errorf("%v toward %v: expected progress 0.3, got %v", kind, edge, got)
			}
			if edge.Project(seed) <= 0 {
				t.Errorf("%v toward %v: expected seed toward the edge, got %+v", kind, edge, seed)
			}
		}
	}
}

func TestSeedTranslationZero(t *testing.T) {
	seed := seedTranslation(transition.Slide{}, testContext(graphics.EdgeBottom), 0)
	if !seed.IsZero() {
		t.Errorf("expected zero seed, got %+v", seed)
	}
}

func TestCompletionVisualEndpoints(t *testing.T) {
	rest := transition.IdentityVisual()
	end := transition.IdentityVisual()
	end.Alpha = 0
	from := transition.LerpVisual(rest, end, 0.4)
	s := &Session{Rest: rest, from: from, fromPercent: 0.4, end: end}

	if got := s.completionVisual(0.4, true); got != from {
		t.Errorf("expected release pose at start of finish, got %+v", got)
	}
	if got := s.completionVisual(1, true); got != end {
		t.Errorf("expected end pose, got %+v", got)
	}
	if got := s.completionVisual(0.4, false); got != from {
		t.Errorf("expected release pose at start of cancel, got %+v", got)
	}
	if got := s.completionVisual(0, false); got != rest {
		t.Errorf("expected rest pose, got %+v", got)
	}
}

func TestDragVisualBlendsIntercept(t *testing.T) {
	pose := transition.IdentityVisual()
	pose.Alpha = 0.5
	target := transition.IdentityVisual()
	s := &Session{intercepted: true, interceptAt: pose}

	if got := s.dragVisual(target, graphics.Offset{}); got != pose {
		t.Errorf("expected intercepted pose at zero drag, got %+v", got)
	}
	if got := s.dragVisual(target, graphics.Offset{Y: interceptBlend * 2}); got != target {
		t.Errorf("expected strategy pose after the blend, got %+v", got)
	}
}
