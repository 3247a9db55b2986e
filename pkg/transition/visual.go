package transition

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/go-drift/transit/pkg/animation"
	"github.com/go-drift/transit/pkg/graphics"
)

// Visual is everything a strategy asks the host to apply to the views
// taking part in a transition for one frame.
type Visual struct {
	// Transform maps the presented view's resting frame to its drawn
	// position.
	Transform matrix.Matrix
	// CornerRadius of the presented view, in its own coordinates.
	CornerRadius float64
	// Alpha of the presented view, or of its proxy when UsesProxies.
	Alpha float64
	// PresentingTransform applies to the view underneath.
	PresentingTransform matrix.Matrix
	// Bounce is a card's resisted overdrag, consumed by the geometry
	// resolver rather than by a transform.
	Bounce float64
	// SourceAlpha is the opacity of the source element's proxy.
	SourceAlpha float64
	// UsesProxies asks the host to draw snapshots instead of live views.
	UsesProxies bool
}

// IdentityVisual returns the untransformed, fully opaque pose.
func IdentityVisual() Visual {
	return Visual{
		Transform:           graphics.Identity,
		Alpha:               1,
		PresentingTransform: graphics.Identity,
	}
}

// LerpVisual interpolates a and b component-wise. UsesProxies is taken
// from b once t passes zero. The endpoints are returned exactly.
func LerpVisual(a, b Visual, t float64) Visual {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	proxies := a.UsesProxies
	if t > 0 {
		proxies = b.UsesProxies
	}
	return Visual{
		Transform:           graphics.LerpMatrix(a.Transform, b.Transform, t),
		CornerRadius:        animation.LerpFloat64(a.CornerRadius, b.CornerRadius, t),
		Alpha:               animation.LerpFloat64(a.Alpha, b.Alpha, t),
		PresentingTransform: graphics.LerpMatrix(a.PresentingTransform, b.PresentingTransform, t),
		Bounce:              animation.LerpFloat64(a.Bounce, b.Bounce, t),
		SourceAlpha:         animation.LerpFloat64(a.SourceAlpha, b.SourceAlpha, t),
		UsesProxies:         proxies,
	}
}

// Bounds returns where r is drawn under v's transform.
func (v Visual) Bounds(r graphics.Rect) graphics.Rect {
	return graphics.TransformRect(r, v.Transform)
}
