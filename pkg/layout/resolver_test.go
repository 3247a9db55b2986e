package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-drift/transit/pkg/graphics"
)

var phone = graphics.RectFromLTWH(0, 0, 400, 800)

var notch = graphics.EdgeInsets{Top: 40, Bottom: 30}

func TestResolve_EmptyContainer(t *testing.T) {
	got := Resolve(Params{IdealSize: graphics.Size{Width: 100, Height: 100}})
	if !got.IsZero() {
		t.Errorf("expected zero result, got %+v", got)
	}
}

func TestResolve_InsetsLeaveNoRoom(t *testing.T) {
	got := Resolve(Params{
		Container:  graphics.RectFromLTWH(0, 0, 100, 100),
		EdgeInsets: graphics.EdgeInsets{Top: 60, Bottom: 60},
	})
	if !got.IsZero() {
		t.Errorf("expected zero result, got %+v", got)
	}
}

func TestResolve_ClampsTallContent(t *testing.T) {
	got := Resolve(Params{
		Container: phone,
		SafeArea:  notch,
		IdealSize: graphics.Size{Width: 300, Height: 5000},
	})
	if got.Frame.Height() != 800-40-30 {
		t.Errorf("expected height clamped to 730, got %v", got.Frame.Height())
	}
	if got.Frame.Width() != 300 || got.Frame.Left != 50 {
		t.Errorf("expected centered 300pt frame, got %v", got.Frame)
	}
}

func TestResolve_AnchorPlacement(t *testing.T) {
	base := Params{Container: phone, SafeArea: notch, IdealSize: graphics.Size{Height: 200}}
	tests := []struct {
		anchor Anchor
		top    float64
	}{
		{AnchorBottom, 800 - 30 - 200},
		{AnchorTop, 40},
		{AnchorCenter, 40 + (730-200)/2},
	}
	for _, tt := range tests {
		p := base
		p.Anchor = tt.anchor
		if got := Resolve(p).Frame.Top; got != tt.top {
			t.Errorf("%v: expected top %v, got %v", tt.anchor, tt.top, got)
		}
	}
}

func TestResolve_DetentWins(t *testing.T) {
	got := Resolve(Params{
		Container:    phone,
		IdealSize:    graphics.Size{Height: 600},
		DetentHeight: 300,
	})
	if got.Frame.Height() != 300 {
		t.Errorf("expected detent height, got %v", got.Frame.Height())
	}
}

func TestResolve_AspectRatioRefit(t *testing.T) {
	got := Resolve(Params{
		Container:   graphics.RectFromLTWH(0, 0, 400, 300),
		AspectRatio: 1,
	})
	want := graphics.RectFromLTWH(50, 0, 300, 300)
	if !got.Frame.ApproxEqual(want) {
		t.Errorf("expected %v, got %v", want, got.Frame)
	}
}

func TestResolve_KeyboardOverlap(t *testing.T) {
	got := Resolve(Params{
		Container:      phone,
		SafeArea:       notch,
		KeyboardHeight: 330,
		IdealSize:      graphics.Size{Height: 100},
	})
	// The keyboard reaches 300pt past the bottom safe inset.
	if got.Frame.Bottom != 800-330 {
		t.Errorf("expected frame above keyboard at 470, got %v", got.Frame.Bottom)
	}
}

func TestResolve_AdditionalSafeArea(t *testing.T) {
	got := Resolve(Params{
		Container:       phone,
		SafeArea:        graphics.EdgeInsets{Top: 40, Bottom: 30, Left: 10, Right: 10},
		IgnoresSafeArea: graphics.EdgeSetOf(graphics.AllEdges[:]...),
	})
	want := graphics.EdgeInsets{Top: 40, Bottom: 30, Left: 10, Right: 10}
	if diff := cmp.Diff(want, got.AdditionalSafeAreaInsets); diff != "" {
		t.Errorf("safe area mismatch (-want +got):\n%s", diff)
	}
	if !got.Frame.ApproxEqual(phone) {
		t.Errorf("expected full-bleed frame, got %v", got.Frame)
	}
}

func TestResolve_CornerRadiusClamp(t *testing.T) {
	got := Resolve(Params{
		Container:    phone,
		IdealSize:    graphics.Size{Width: 40, Height: 30},
		CornerRadius: 50,
	})
	if got.CornerRadius != 15 {
		t.Errorf("expected radius clamped to 15, got %v", got.CornerRadius)
	}
}

func TestResolve_Bounce(t *testing.T) {
	base := Params{Container: phone, IdealSize: graphics.Size{Height: 200}, BounceEdge: graphics.EdgeBottom}

	shifted := base
	shifted.Bounce = 20
	got := Resolve(shifted)
	want := graphics.RectFromLTWH(0, 620, 400, 200)
	if diff := cmp.Diff(want, got.Frame, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("shifted frame mismatch (-want +got):\n%s", diff)
	}

	stretched := base
	stretched.Bounce = -15
	got = Resolve(stretched)
	if got.Frame.Top != 585 || got.Frame.Bottom != 800 {
		t.Errorf("expected stretch away from bottom, got %v", got.Frame)
	}
}

func TestResolver_Caches(t *testing.T) {
	var r Resolver
	p := Params{Container: phone}
	r.Resolve(p)
	r.Resolve(p)
	if r.Passes() != 1 {
		t.Errorf("expected one pass, got %d", r.Passes())
	}
	r.Invalidate()
	r.Resolve(p)
	if r.Passes() != 2 {
		t.Errorf("expected recompute after invalidate, got %d", r.Passes())
	}
}

func TestParseAnchor(t *testing.T) {
	if a, err := ParseAnchor("center"); err != nil || a != AnchorCenter {
		t.Errorf("ParseAnchor(center) = %v, %v", a, err)
	}
	if _, err := ParseAnchor("middle"); err == nil {
		t.Error("expected error")
	}
}
