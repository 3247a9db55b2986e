package transition

import (
	"github.com/go-drift/transit/pkg/graphics"
)

// Card keeps the presented view untransformed and reports the drag as a
// bounce the geometry resolver folds into the frame on every pass. Up to
// the commit distance the card follows the finger; past it, and in the
// opposite direction, the bounce is resisted.
type Card struct{}

func (Card) Kind() Kind { return KindCard }

func (Card) Interruptible() bool { return true }

func (Card) Rest(ctx Context) Visual {
	v := IdentityVisual()
	v.CornerRadius = ctx.Options.CornerRadius
	return v
}

func (Card) Progress(ctx Context, translation graphics.Offset) float64 {
	return slideProgress(ctx, translation)
}

func (c Card) Transform(ctx Context, translation graphics.Offset) Visual {
	v := c.Rest(ctx)
	v.Bounce = cardBounce(ctx, ctx.Edge.Project(translation))
	return v
}

func (c Card) OneShot(ctx Context, direction Direction) OneShot {
	hidden := c.Rest(ctx)
	hidden.Bounce = ctx.OffscreenDistance()
	return oneShot(ctx, direction, hidden, c.Rest(ctx), true)
}

func cardBounce(ctx Context, projected float64) float64 {
	friction := ctx.Options.Primary()
	if projected <= 0 {
		return friction.Apply(projected)
	}
	free := ctx.Options.CommitThreshold * ctx.Extent()
	if projected <= free {
		return projected
	}
	return free + friction.Apply(projected-free)
}
