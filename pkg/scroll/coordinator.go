package scroll

import (
	"fmt"

	"github.com/go-drift/transit/pkg/graphics"
)

// Capture records a scroll view whose drag the transition has taken over.
type Capture struct {
	Handle Handle
	// CaptureOffset is the content offset at capture time measured from
	// the inset origin, so a view resting at the top reads zero.
	CaptureOffset graphics.Offset
	// Edge is the dismissal edge the view was found resting against.
	Edge graphics.Edge
}

// Disposition is the outcome of forwarding a scroll view's drag delta.
type Disposition int

const (
	// NotCaptured means no capture is active; the scroll view owns the drag.
	NotCaptured Disposition = iota
	// Captured means the delta belongs to the transition and the content
	// was held in place.
	Captured
	// Released means the capture ended on this delta and the scroll view
	// owns the rest of the gesture.
	Released
)

func (d Disposition) String() string {
	switch d {
	case NotCaptured:
		return "not-captured"
	case Captured:
		return "captured"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("Disposition(%d)", int(d))
	}
}

// Coordinator decides, for one presented view, whether nested scroll views
// may share their drags with the transition.
type Coordinator struct {
	// WantsInteractiveDismissal skips the resting-edge test, so any drag
	// in a permitted direction is captured. Set while a keyboard covers the
	// content.
	WantsInteractiveDismissal bool

	table    *Table
	capture  Capture
	captured bool
}

// NewCoordinator returns a coordinator resolving handles through table.
func NewCoordinator(table *Table) *Coordinator {
	return &Coordinator{table: table}
}

// ShouldRecognizeSimultaneously answers whether the transition's drag may
// run alongside the scroll view behind h. It refuses, leaving the drag to
// the scroll view, unless the view rests against the edge required by one
// of dismissEdges. Accepting records a Capture.
func (c *Coordinator) ShouldRecognizeSimultaneously(h Handle, dismissEdges graphics.EdgeSet) bool {
	view, ok := c.table.Lookup(h)
	if !ok || dismissEdges.IsEmpty() {
		return false
	}
	for _, edge := range dismissEdges.Edges() {
		if c.WantsInteractiveDismissal || IsAtEdge(view, edge, dismissEdges) {
			c.begin(h, view, edge)
			return true
		}
	}
	return false
}

func (c *Coordinator) begin(h Handle, view View, edge graphics.Edge) {
	inset := view.ContentInset()
	c.capture = Capture{
		Handle:        h,
		CaptureOffset: view.ContentOffset().Add(graphics.Offset{X: inset.Left, Y: inset.Top}),
		Edge:          edge,
	}
	c.captured = true
}

// Capture returns the active capture, if any.
func (c *Coordinator) Capture() (Capture, bool) {
	return c.capture, c.captured
}

// Captures reports whether h is the captured view.
func (c *Coordinator) Captures(h Handle) bool {
	return c.captured && c.capture.Handle == h
}

// Forward routes one drag delta from the captured scroll view.
//
// While captured, the content is held at the capture offset so only the
// transition moves. A delta opposing the capture edge while the transition
// is at rest releases the capture: the content is pinned to its resting
// extreme once and the scroll view owns the remainder of the gesture.
func (c *Coordinator) Forward(delta graphics.Offset, transitionAtRest bool) Disposition {
	if !c.captured {
		return NotCaptured
	}
	view, ok := c.table.Lookup(c.capture.Handle)
	if !ok {
		c.Reset()
		return NotCaptured
	}
	if transitionAtRest && c.capture.Edge.Project(delta) < 0 && !c.WantsInteractiveDismissal {
		PinToEdge(view, c.capture.Edge)
		c.Reset()
		return Released
	}
	c.hold(view)
	return Captured
}

func (c *Coordinator) hold(view View) {
	inset := view.ContentInset()
	view.SetContentOffset(c.capture.CaptureOffset.Sub(graphics.Offset{X: inset.Left, Y: inset.Top}))
}

// Release ends the capture, leaving the content where it was held.
func (c *Coordinator) Release() {
	if !c.captured {
		return
	}
	if view, ok := c.table.Lookup(c.capture.Handle); ok {
		c.hold(view)
	}
	c.Reset()
}

// Reset forgets the capture without touching the view.
func (c *Coordinator) Reset() {
	c.capture = Capture{}
	c.captured = false
}
