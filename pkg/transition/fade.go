package transition

import "github.com/go-drift/transit/pkg/graphics"

// Fade cross-fades the presented view. It has no interactive form and
// cannot be intercepted once running.
type Fade struct{}

func (Fade) Kind() Kind { return KindFade }

func (Fade) Interruptible() bool { return false }

func (Fade) Rest(Context) Visual { return IdentityVisual() }

func (Fade) Progress(Context, graphics.Offset) float64 { return 0 }

func (f Fade) Transform(ctx Context, _ graphics.Offset) Visual { return f.Rest(ctx) }

func (f Fade) OneShot(ctx Context, direction Direction) OneShot {
	hidden := f.Rest(ctx)
	hidden.Alpha = 0
	return oneShot(ctx, direction, hidden, f.Rest(ctx), false)
}
