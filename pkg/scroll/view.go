// Package scroll arbitrates drags between a presented view's transition and
// the scrollable content nested inside it.
//
// The transition may only take a drag from a scroll view resting against
// the edge the content would otherwise scroll away from. [IsAtEdge] answers
// that question and [Coordinator] records the capture and pins the content
// while the transition owns the drag.
package scroll

import (
	"github.com/go-drift/transit/pkg/graphics"
)

// edgeEpsilon is the tolerance for treating a content offset as resting
// against an extreme.
const edgeEpsilon = 0.5

// View is the part of a scrollable view the engine reads and pins. Offsets
// follow the usual convention: the content rests at the top-left when
// ContentOffset equals (-inset.Left, -inset.Top).
type View interface {
	ContentOffset() graphics.Offset
	SetContentOffset(graphics.Offset)
	ContentInset() graphics.EdgeInsets
	ContentSize() graphics.Size
	ViewportSize() graphics.Size
}

// Extremes returns the minimum and maximum content offsets of v along axis.
func Extremes(v View, axis graphics.Axis) (lo, hi float64) {
	inset := v.ContentInset()
	content := v.ContentSize().Extent(axis)
	viewport := v.ViewportSize().Extent(axis)
	if axis == graphics.AxisHorizontal {
		lo = -inset.Left
		hi = content + inset.Right - viewport
	} else {
		lo = -inset.Top
		hi = content + inset.Bottom - viewport
	}
	return lo, max(hi, lo)
}

// IsScrollable reports whether v's content can move along axis.
func IsScrollable(v View, axis graphics.Axis) bool {
	lo, hi := Extremes(v, axis)
	return hi-lo > edgeEpsilon
}

// RestingOffset returns the offset along edge's axis that v must rest at
// for a drag toward edge to belong to the transition. Dragging toward the
// bottom requires content scrolled to the top, and so on.
func RestingOffset(v View, edge graphics.Edge) float64 {
	lo, hi := Extremes(v, edge.Axis())
	if edge == graphics.EdgeBottom || edge == graphics.EdgeTrailing {
		return lo
	}
	return hi
}

// IsAtEdge reports whether a drag toward edge may be taken from v.
//
// The content offset on edge's axis must sit within a small epsilon of the
// resting extreme; a view that cannot scroll on that axis always does. A
// view that can also scroll on the orthogonal axis is never at the edge
// when that axis is itself permitted for dismissal, since the drag is
// ambiguous between the two.
func IsAtEdge(v View, edge graphics.Edge, permitted graphics.EdgeSet) bool {
	axis := edge.Axis()
	if IsScrollable(v, axis) {
		offset := v.ContentOffset().Component(axis)
		rest := RestingOffset(v, edge)
		if edge == graphics.EdgeBottom || edge == graphics.EdgeTrailing {
			if offset > rest+edgeEpsilon {
				return false
			}
		} else if offset < rest-edgeEpsilon {
			return false
		}
	}
	orthogonal := axis.Orthogonal()
	return !(IsScrollable(v, orthogonal) && permitted.ContainsAxis(orthogonal))
}

// PinToEdge moves v's content offset on edge's axis to its resting extreme.
func PinToEdge(v View, edge graphics.Edge) {
	offset := v.ContentOffset()
	rest := RestingOffset(v, edge)
	if edge.Axis() == graphics.AxisHorizontal {
		offset.X = rest
	} else {
		offset.Y = rest
	}
	v.SetContentOffset(offset)
}
