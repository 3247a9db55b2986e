package transition

import (
	"github.com/go-drift/transit/pkg/graphics"
)

// MatchedGeometry shrinks the presented view toward the element it grew
// from. A drag translates it on both axes with friction, scales it toward
// MinimumScaleFactor and rounds its corners toward the source's radius.
type MatchedGeometry struct{}

func (MatchedGeometry) Kind() Kind { return KindMatchedGeometry }

func (MatchedGeometry) Interruptible() bool { return true }

func (MatchedGeometry) Rest(Context) Visual {
	return IdentityVisual()
}

func (MatchedGeometry) Progress(ctx Context, translation graphics.Offset) float64 {
	return matchedProgress(ctx, translation)
}

func (MatchedGeometry) Transform(ctx Context, translation graphics.Offset) Visual {
	return matchedTransform(ctx, translation)
}

func (m MatchedGeometry) OneShot(ctx Context, direction Direction) OneShot {
	return oneShot(ctx, direction, collapsed(ctx), m.Rest(ctx), true)
}

// Zoom runs the matched-geometry motion on snapshot proxies and
// cross-fades the destination proxy into the source proxy, so the live
// content is never re-laid out during the drag.
type Zoom struct{}

func (Zoom) Kind() Kind { return KindZoom }

func (Zoom) Interruptible() bool { return true }

func (Zoom) Rest(Context) Visual {
	v := IdentityVisual()
	v.UsesProxies = true
	return v
}

func (Zoom) Progress(ctx Context, translation graphics.Offset) float64 {
	return matchedProgress(ctx, translation)
}

func (Zoom) Transform(ctx Context, translation graphics.Offset) Visual {
	v := matchedTransform(ctx, translation)
	percent := matchedProgress(ctx, translation)
	v.UsesProxies = true
	v.Alpha = 1 - percent
	v.SourceAlpha = percent
	return v
}

func (z Zoom) OneShot(ctx Context, direction Direction) OneShot {
	hidden := collapsed(ctx)
	hidden.UsesProxies = true
	hidden.Alpha = 0
	hidden.SourceAlpha = 1
	return oneShot(ctx, direction, hidden, z.Rest(ctx), true)
}

func matchedProgress(ctx Context, translation graphics.Offset) float64 {
	return clamp01(ctx.Edge.Project(translation) / ctx.Options.MatchedGeometryDistance)
}

func matchedTransform(ctx Context, translation graphics.Offset) Visual {
	axis := ctx.Edge.Axis()
	along := ctx.Options.Primary().Apply(translation.Component(axis))
	across := ctx.Options.Secondary().Apply(translation.Component(axis.Orthogonal()))
	var offset graphics.Offset
	if axis == graphics.AxisVertical {
		offset = graphics.Offset{X: across, Y: along}
	} else {
		offset = graphics.Offset{X: along, Y: across}
	}

	percent := matchedProgress(ctx, translation)
	minScale := ctx.Options.MinimumScaleFactor
	scale := 1 - (1-minScale)*percent

	v := IdentityVisual()
	v.Transform = graphics.ScaleTranslate(scale, offset, ctx.Frame.Center())
	v.CornerRadius = ctx.SourceCornerRadius * percent
	return v
}

// collapsed is the pose that covers the source element exactly, or, when
// there is no source, the minimum-scale pose faded out in place.
func collapsed(ctx Context) Visual {
	v := IdentityVisual()
	if ctx.Source.IsEmpty() || ctx.Frame.IsEmpty() {
		v.Transform = graphics.ScaleTranslate(ctx.Options.MinimumScaleFactor, graphics.Offset{}, ctx.Frame.Center())
		v.Alpha = 0
		return v
	}
	v.Transform = graphics.RectTransform(ctx.Frame, ctx.Source)
	v.CornerRadius = ctx.SourceCornerRadius
	return v
}
