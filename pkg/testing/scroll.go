package testing

import "github.com/go-drift/transit/pkg/graphics"

// FakeScrollView is an in-memory scroll view.
type FakeScrollView struct {
	Offset   graphics.Offset
	Inset    graphics.EdgeInsets
	Content  graphics.Size
	Viewport graphics.Size
	// Sets counts SetContentOffset calls.
	Sets int
}

// NewFakeScrollView returns a vertically scrollable view resting at the
// top of its content.
func NewFakeScrollView(viewport, content graphics.Size) *FakeScrollView {
	return &FakeScrollView{Viewport: viewport, Content: content}
}

func (v *FakeScrollView) ContentOffset() graphics.Offset { return v.Offset }
func (v *FakeScrollView) ContentInset() graphics.EdgeInsets { return v.Inset }
func (v *FakeScrollView) ContentSize() graphics.Size { return v.Content }
func (v *FakeScrollView) ViewportSize() graphics.Size { return v.Viewport }
func (v *FakeScrollView) SetContentOffset(o graphics.Offset) {
	v.Offset = o
	v.Sets++
}
