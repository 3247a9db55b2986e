package transition

import (
	"fmt"

	"github.com/go-drift/transit/pkg/graphics"
)

// Direction says whether a transition shows or hides the presented view.
type Direction int

const (
	Presenting Direction = iota
	Dismissing
)

func (d Direction) String() string {
	switch d {
	case Presenting:
		return "presenting"
	case Dismissing:
		return "dismissing"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Kind identifies a strategy. Values from KindCustom on are handed out by
// a Registry.
type Kind int

const (
	KindSlide Kind = iota
	KindToast
	KindCard
	KindMatchedGeometry
	KindZoom
	KindFade
	KindCustom
)

var kindNames = [...]string{
	KindSlide:           "slide",
	KindToast:           "toast",
	KindCard:            "card",
	KindMatchedGeometry: "matched-geometry",
	KindZoom:            "zoom",
	KindFade:            "fade",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("custom(%d)", int(k-KindCustom))
}

// ParseKind parses the name of a built-in kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("transition: unknown kind %q", s)
}

// Context is the geometry a strategy evaluates against.
type Context struct {
	// Container is the bounds of the presentation.
	Container graphics.Rect
	// Frame is the presented view's resting frame.
	Frame graphics.Rect
	// Source is the rect of the element a matched-geometry transition
	// grows from. Empty when there is none.
	Source graphics.Rect
	// SourceCornerRadius is the source element's corner radius.
	SourceCornerRadius float64
	// Edge is the dismissal edge of the current session.
	Edge graphics.Edge
	// Options are the normalized tuning options.
	Options Options
}

// Extent returns the frame's size along the dismissal axis, falling back
// to the container when the frame is empty.
func (c Context) Extent() float64 {
	axis := c.Edge.Axis()
	if e := c.Frame.Size().Extent(axis); e > 0 {
		return e
	}
	return c.Container.Size().Extent(axis)
}

// OffscreenDistance returns how far the frame must travel toward Edge to
// leave the container entirely.
func (c Context) OffscreenDistance() float64 {
	f, b := c.Frame, c.Container
	if f.IsEmpty() {
		f = b
	}
	switch c.Edge {
	case graphics.EdgeTop:
		return f.Bottom - b.Top
	case graphics.EdgeLeading:
		return f.Right - b.Left
	case graphics.EdgeTrailing:
		return b.Right - f.Left
	default:
		return b.Bottom - f.Top
	}
}

// Strategy computes the visuals of one transition kind.
//
// Transform is pure: the same context and translation always produce the
// same Visual. Translation is the gesture translation already adjusted
// for any scroll hand-off baseline.
type Strategy interface {
	Kind() Kind
	// Interruptible reports whether a drag may take over a running
	// transition of this kind, and whether the kind supports interactive
	// dismissal at all.
	Interruptible() bool
	// Rest returns the fully presented pose.
	Rest(ctx Context) Visual
	// Progress maps a translation onto the dismissal percent in [0, 1].
	Progress(ctx Context, translation graphics.Offset) float64
	// Transform returns the pose for a live drag.
	Transform(ctx Context, translation graphics.Offset) Visual
	// OneShot builds the non-interactive transition in direction.
	OneShot(ctx Context, direction Direction) OneShot
}

// Registry resolves kinds to strategies, including custom ones.
type Registry struct {
	custom []Strategy
}

// Register adds a custom strategy and returns its kind.
func (r *Registry) Register(s Strategy) Kind {
	r.custom = append(r.custom, s)
	return KindCustom + Kind(len(r.custom)-1)
}

// Lookup returns the strategy for k.
func (r *Registry) Lookup(k Kind) (Strategy, bool) {
	if k < KindCustom {
		return Builtin(k)
	}
	if r == nil {
		return nil, false
	}
	i := int(k - KindCustom)
	if i < 0 || i >= len(r.custom) {
		return nil, false
	}
	return r.custom[i], true
}

// Builtin returns the strategy for a built-in kind.
func Builtin(k Kind) (Strategy, bool) {
	switch k {
	case KindSlide:
		return Slide{}, true
	case KindToast:
		return Toast{}, true
	case KindCard:
		return Card{}, true
	case KindMatchedGeometry:
		return MatchedGeometry{}, true
	case KindZoom:
		return Zoom{}, true
	case KindFade:
		return Fade{}, true
	}
	return nil, false
}

func clamp01(v float64) float64 {
	return graphics.Clamp(v, 0, 1)
}
