package scroll

import (
	"github.com/go-drift/transit/pkg/graphics"
)

// Controller is a concrete scrollable [View]. Hosts without their own
// scroll implementation, tests and the replay tool use it.
type Controller struct {
	offset         graphics.Offset
	inset          graphics.EdgeInsets
	contentSize    graphics.Size
	viewportSize   graphics.Size
	listeners      map[int]func()
	nextListenerID int
}

// NewController creates a controller resting at the top-left extreme.
func NewController(viewport, content graphics.Size, inset graphics.EdgeInsets) *Controller {
	return &Controller{
		offset:       graphics.Offset{X: -inset.Left, Y: -inset.Top},
		inset:        inset,
		contentSize:  content,
		viewportSize: viewport,
	}
}

// ContentOffset returns the current scroll offset.
func (c *Controller) ContentOffset() graphics.Offset {
	return c.offset
}

// SetContentOffset sets the offset without clamping, which lets callers
// express overscroll.
func (c *Controller) SetContentOffset(offset graphics.Offset) {
	if offset == c.offset {
		return
	}
	c.offset = offset
	c.notifyListeners()
}

// ContentInset returns the content insets.
func (c *Controller) ContentInset() graphics.EdgeInsets {
	return c.inset
}

// SetContentInset replaces the content insets.
func (c *Controller) SetContentInset(inset graphics.EdgeInsets) {
	if inset == c.inset {
		return
	}
	c.inset = inset
	c.notifyListeners()
}

// ContentSize returns the size of the scrolled content.
func (c *Controller) ContentSize() graphics.Size {
	return c.contentSize
}

// SetContentSize replaces the content size.
func (c *Controller) SetContentSize(size graphics.Size) {
	if size == c.contentSize {
		return
	}
	c.contentSize = size
	c.notifyListeners()
}

// ViewportSize returns the visible extent.
func (c *Controller) ViewportSize() graphics.Size {
	return c.viewportSize
}

// SetViewportSize replaces the visible extent.
func (c *Controller) SetViewportSize(size graphics.Size) {
	if size == c.viewportSize {
		return
	}
	c.viewportSize = size
	c.notifyListeners()
}

// JumpTo moves to offset, clamped to the scroll extremes on both axes.
func (c *Controller) JumpTo(offset graphics.Offset) {
	xlo, xhi := Extremes(c, graphics.AxisHorizontal)
	ylo, yhi := Extremes(c, graphics.AxisVertical)
	c.SetContentOffset(graphics.Offset{
		X: graphics.Clamp(offset.X, xlo, xhi),
		Y: graphics.Clamp(offset.Y, ylo, yhi),
	})
}

// ScrollBy applies a drag delta. Dragging content down moves the offset
// up, so the delta is subtracted.
func (c *Controller) ScrollBy(delta graphics.Offset) {
	c.JumpTo(c.offset.Sub(delta))
}

// AddListener registers a callback for offset and extent changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
