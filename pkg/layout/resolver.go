// Package layout resolves the resting geometry of a presented view.
//
// [Resolve] is a pure function of the container, its safe area, the
// keyboard and the variant's parameters. [Resolver] caches the last result
// for a layout pass and [Pipeline] holds passes back while a live
// transform owns the view.
package layout

import (
	"fmt"

	"github.com/go-drift/transit/pkg/graphics"
)

// Anchor selects the vertical placement of the frame in the available rect.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorCenter
	AnchorTop
)

func (a Anchor) String() string {
	switch a {
	case AnchorBottom:
		return "bottom"
	case AnchorCenter:
		return "center"
	case AnchorTop:
		return "top"
	default:
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
}

// ParseAnchor parses the String form of an anchor.
func ParseAnchor(s string) (Anchor, error) {
	for a := AnchorBottom; a <= AnchorTop; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("layout: unknown anchor %q", s)
}

// Params are the inputs of a layout pass.
type Params struct {
	// Container is the bounds the presented view is laid out in.
	Container graphics.Rect
	// SafeArea is the container's safe-area insets.
	SafeArea graphics.EdgeInsets
	// IgnoresSafeArea lists the edges along which the frame extends into the
	// safe area. The overlap is reported back as additional safe area.
	IgnoresSafeArea graphics.EdgeSet
	// IdealSize is the content's measured size. A zero dimension fills the
	// available space.
	IdealSize graphics.Size
	// KeyboardHeight is the height of a software keyboard covering the
	// bottom of the container.
	KeyboardHeight float64
	// AspectRatio is width over height. Zero means unconstrained.
	AspectRatio float64
	// EdgeInsets are the variant's margins inside the safe area.
	EdgeInsets graphics.EdgeInsets
	// CornerRadius is the requested corner radius.
	CornerRadius float64
	// DetentHeight, when positive, fixes the height.
	DetentHeight float64
	// Anchor places the frame vertically.
	Anchor Anchor
	// Bounce is a card's resisted overdrag. Positive values shift the
	// frame toward BounceEdge, negative values stretch it away from it.
	Bounce     float64
	BounceEdge graphics.Edge
}

// Result is the geometry of one layout pass. The zero Result means no
// valid geometry was available and must not be applied.
type Result struct {
	Frame                    graphics.Rect
	AdditionalSafeAreaInsets graphics.EdgeInsets
	CornerRadius             float64
}

// IsZero reports whether r carries no geometry.
func (r Result) IsZero() bool {
	return r == Result{}
}

// KeyboardOverlap returns how far the keyboard reaches past the bottom
// safe-area inset.
func (p Params) KeyboardOverlap() float64 {
	return max(0, p.KeyboardHeight-p.SafeArea.Bottom)
}

// Available returns the rect the frame is fitted into.
func (p Params) Available() graphics.Rect {
	insets := p.EdgeInsets
	for _, edge := range graphics.AllEdges {
		if p.IgnoresSafeArea.Contains(edge) {
			continue
		}
		switch edge {
		case graphics.EdgeTop:
			insets.Top += p.SafeArea.Top
		case graphics.EdgeBottom:
			insets.Bottom += p.SafeArea.Bottom
		case graphics.EdgeLeading:
			insets.Left += p.SafeArea.Left
		case graphics.EdgeTrailing:
			insets.Right += p.SafeArea.Right
		}
	}
	if overlap := p.KeyboardOverlap(); overlap > 0 {
		if p.IgnoresSafeArea.Contains(graphics.EdgeBottom) {
			insets.Bottom += p.KeyboardHeight
		} else {
			insets.Bottom += overlap
		}
	}
	return p.Container.Inset(insets)
}

// Resolve computes the frame for p. An empty container, or insets that
// leave no room, yield the zero Result.
func Resolve(p Params) Result {
	if p.Container.IsEmpty() {
		return Result{}
	}
	available := p.Available()
	if available.IsEmpty() {
		return Result{}
	}

	width := available.Width()
	if p.IdealSize.Width > 0 {
		width = min(p.IdealSize.Width, width)
	}

	var height float64
	switch {
	case p.DetentHeight > 0:
		height = p.DetentHeight
	case p.AspectRatio > 0:
		height = width / p.AspectRatio
	case p.IdealSize.Height > 0:
		height = p.IdealSize.Height
	default:
		height = available.Height()
	}
	if p.AspectRatio > 0 && p.DetentHeight <= 0 && height > available.Height() {
		// Too tall for the ratio: fit by height and narrow the width.
		height = available.Height()
		width = min(width, height*p.AspectRatio)
	}
	height = min(height, available.Height())

	left := available.Left + (available.Width()-width)/2
	var top float64
	switch p.Anchor {
	case AnchorTop:
		top = available.Top
	case AnchorCenter:
		top = available.Top + (available.Height()-height)/2
	default:
		top = available.Bottom - height
	}
	resting := graphics.RectFromLTWH(left, top, width, height)

	return Result{
		Frame:                    applyBounce(resting, p.Bounce, p.BounceEdge),
		AdditionalSafeAreaInsets: safeAreaOverlap(p, resting),
		CornerRadius:             graphics.Clamp(p.CornerRadius, 0, min(width, height)/2),
	}
}

// applyBounce shifts the frame toward edge for positive bounce and pulls
// the opposite side outward for negative bounce.
func applyBounce(frame graphics.Rect, bounce float64, edge graphics.Edge) graphics.Rect {
	switch {
	case bounce > 0:
		d := edge.Direction().Scale(bounce)
		return frame.Translate(d.X, d.Y)
	case bounce < 0:
		stretch := -bounce
		switch edge {
		case graphics.EdgeBottom:
			frame.Top -= stretch
		case graphics.EdgeTop:
			frame.Bottom += stretch
		case graphics.EdgeLeading:
			frame.Right += stretch
		case graphics.EdgeTrailing:
			frame.Left -= stretch
		}
	}
	return frame
}

// safeAreaOverlap returns, per side, how much of the safe area (and of the
// keyboard at the bottom) the frame covers.
func safeAreaOverlap(p Params, frame graphics.Rect) graphics.EdgeInsets {
	c := p.Container
	bottomInset := max(p.SafeArea.Bottom, p.KeyboardHeight)
	return graphics.EdgeInsets{
		Top:    graphics.Clamp(c.Top+p.SafeArea.Top-frame.Top, 0, p.SafeArea.Top),
		Bottom: graphics.Clamp(frame.Bottom-(c.Bottom-bottomInset), 0, bottomInset),
		Left:   graphics.Clamp(c.Left+p.SafeArea.Left-frame.Left, 0, p.SafeArea.Left),
		Right:  graphics.Clamp(frame.Right-(c.Right-p.SafeArea.Right), 0, p.SafeArea.Right),
	}
}
