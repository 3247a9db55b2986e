package transition

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/go-drift/transit/pkg/graphics"
)

// Slide moves the presented view along one axis, following the finger 1:1
// toward the dismissal edge and resisting the other way. The presenting
// view underneath is scaled down while covered and grows back to full size
// as the drag progresses.
type Slide struct{}

func (Slide) Kind() Kind { return KindSlide }

func (Slide) Interruptible() bool { return true }

// Rest is the covered pose: no offset, square corners and the presenting
// view pushed back.
func (Slide) Rest(ctx Context) Visual {
	v := IdentityVisual()
	v.PresentingTransform = presentingScale(ctx, ctx.Options.PresentingScale)
	return v
}

func (Slide) Progress(ctx Context, translation graphics.Offset) float64 {
	return slideProgress(ctx, translation)
}

func (Slide) Transform(ctx Context, translation graphics.Offset) Visual {
	progress := slideProgress(ctx, translation)
	scale := ctx.Options.PresentingScale + (1-ctx.Options.PresentingScale)*progress
	v := IdentityVisual()
	v.Transform = graphics.Translation(slideOffset(ctx, translation))
	v.CornerRadius = ctx.Options.CornerRadius
	v.PresentingTransform = presentingScale(ctx, scale)
	return v
}

func (s Slide) OneShot(ctx Context, direction Direction) OneShot {
	offscreen := IdentityVisual()
	offscreen.Transform = graphics.Translation(ctx.Edge.Direction().Scale(ctx.OffscreenDistance()))
	offscreen.CornerRadius = ctx.Options.CornerRadius
	return oneShot(ctx, direction, offscreen, s.Rest(ctx), true)
}

// Toast is a slide for a view anchored to its dismissal edge. It keeps its
// corner radius, fades in from beyond the edge and leaves the presenting
// view alone.
type Toast struct{}

func (Toast) Kind() Kind { return KindToast }

func (Toast) Interruptible() bool { return true }

func (Toast) Rest(ctx Context) Visual {
	v := IdentityVisual()
	v.CornerRadius = ctx.Options.CornerRadius
	return v
}

func (Toast) Progress(ctx Context, translation graphics.Offset) float64 {
	return slideProgress(ctx, translation)
}

func (t Toast) Transform(ctx Context, translation graphics.Offset) Visual {
	v := t.Rest(ctx)
	v.Transform = graphics.Translation(slideOffset(ctx, translation))
	return v
}

func (t Toast) OneShot(ctx Context, direction Direction) OneShot {
	hidden := t.Rest(ctx)
	hidden.Transform = graphics.Translation(ctx.Edge.Direction().Scale(ctx.OffscreenDistance()))
	hidden.Alpha = 0
	return oneShot(ctx, direction, hidden, t.Rest(ctx), true)
}

// slideOffset follows the projected translation toward the edge and
// resists it away from the edge. Movement across the axis is dropped.
func slideOffset(ctx Context, translation graphics.Offset) graphics.Offset {
	along := ctx.Edge.Project(translation)
	if along < 0 {
		along = ctx.Options.Primary().Apply(along)
	}
	return ctx.Edge.Direction().Scale(along)
}

func slideProgress(ctx Context, translation graphics.Offset) float64 {
	extent := ctx.Extent()
	if extent <= 0 {
		return 0
	}
	return clamp01(ctx.Edge.Project(translation) / extent)
}

func presentingScale(ctx Context, scale float64) matrix.Matrix {
	return graphics.ScaleTranslate(scale, graphics.Offset{}, ctx.Container.Center())
}

// oneShot orders hidden and shown for direction.
func oneShot(ctx Context, direction Direction, hidden, shown Visual, interruptible bool) OneShot {
	o := OneShot{
		From:          hidden,
		To:            shown,
		Duration:      ctx.Options.Duration,
		Curve:         ctx.Options.Curve,
		Interruptible: interruptible,
	}
	if direction == Dismissing {
		return o.Reversed()
	}
	return o
}
