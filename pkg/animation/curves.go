package animation

import "math"

// Curve eases progress t in [0, 1]. Every curve maps 0 to 0 and 1 to 1.
type Curve func(t float64) float64

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 {
	return t
}

// Named curves. EaseOut is the default completion curve of interactive
// transitions: it leaves at full speed, so the hand-off from the finger
// keeps its momentum.
var (
	Ease               = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn             = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut            = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut          = CubicBezier(0.4, 0.0, 0.2, 1.0)
	IOSNavigationCurve = CubicBezier(0.22, 1.0, 0.36, 1.0)
)

// CubicBezier returns the easing of CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	b := bezier{x: newCubic(x1, x2), y: newCubic(y1, y2)}
	return b.at
}

// cubic is one coordinate of a bezier anchored at 0 and 1, in polynomial
// form a*t^3 + b*t^2 + c*t.
type cubic struct{ a, b, c float64 }

func newCubic(p1, p2 float64) cubic {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return cubic{a: 1 - c - b, b: b, c: c}
}

func (k cubic) eval(t float64) float64  { return ((k.a*t+k.b)*t + k.c) * t }
func (k cubic) slope(t float64) float64 { return (3*k.a*t+2*k.b)*t + k.c }

type bezier struct{ x, y cubic }

const bezierEpsilon = 1e-7

func (b bezier) at(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return b.y.eval(b.solve(t))
}

// solve finds the parameter whose x coordinate is x. Newton's method
// usually lands in a few steps; bisection takes over where the slope
// flattens.
func (b bezier) solve(x float64) float64 {
	u := x
	for range 8 {
		dx := b.x.eval(u) - x
		if math.Abs(dx) < bezierEpsilon {
			return u
		}
		slope := b.x.slope(u)
		if math.Abs(slope) < 1e-6 {
			break
		}
		u -= dx / slope
	}
	lo, hi := 0.0, 1.0
	u = x
	for range 32 {
		got := b.x.eval(u)
		if math.Abs(got-x) < bezierEpsilon {
			break
		}
		if got < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// CriticallyDampedSpring returns a curve following a critically damped spring
// released at rest, normalised to land exactly on 1. Larger stiffness
// settles earlier in the timeline.
func CriticallyDampedSpring(stiffness float64) Curve {
	if stiffness <= 0 {
		return LinearCurve
	}
	raw := func(t float64) float64 {
		return 1 - (1+stiffness*t)*math.Exp(-stiffness*t)
	}
	end := raw(1)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return raw(t) / end
	}
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
