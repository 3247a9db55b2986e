package testing

import (
	"testing"
	"time"

	"github.com/go-drift/transit/pkg/presentation"
	"github.com/go-drift/transit/pkg/transition"
)

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTesterWithT(t)

	if tester.Coordinator == nil {
		t.Fatal("expected coordinator")
	}
	call, ok := tester.Host.Last(CallLayout)
	if !ok {
		t.Fatal("expected the container to produce a layout pass")
	}
	frame := call.Layout.Frame
	if frame.Top != DefaultSafeArea.Top || frame.Bottom != DefaultTestHeight-DefaultSafeArea.Bottom {
		t.Errorf("expected frame inside the safe area, got %+v", frame)
	}
}

func TestPresent_Settles(t *testing.T) {
	tester := NewTesterWithT(t)

	if err := tester.Present(transition.KindSlide, transition.Options{}); err != nil {
		t.Fatal(err)
	}
	if !tester.Coordinator.IsPresented() {
		t.Error("expected view to be presented")
	}
	if tester.Coordinator.State() != presentation.StateIdle {
		t.Errorf("expected idle, got %v", tester.Coordinator.State())
	}
	if n := tester.Host.Count(CallPerformPresentation); n != 1 {
		t.Errorf("expected one PerformPresentation, got %d", n)
	}
	end, ok := tester.Host.Last(CallDidEnd)
	if !ok || !end.Completed || end.Direction != transition.Presenting {
		t.Errorf("expected completed presentation, got %+v", end)
	}
}

func TestPresent_Twice(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Present(transition.KindSlide, transition.Options{})

	if err := tester.Present(transition.KindSlide, transition.Options{}); err == nil {
		t.Error("expected second presentation to fail")
	}
}

func TestPumpAndSettle_Idle(t *testing.T) {
	tester := NewTesterWithT(t)

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected idle scheduler to settle, got: %v", err)
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Coordinator.BeginPresentation(DefaultAnchor, presentation.Config{
		Kind:    transition.KindSlide,
		Options: transition.Options{Duration: time.Minute},
	})

	if err := tester.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestRecordingHost_Veto(t *testing.T) {
	host := NewRecordingHost()
	if !host.ShouldAllowDismiss() {
		t.Error("expected dismissal allowed by default")
	}
	host.Veto = true
	if host.ShouldAllowDismiss() {
		t.Error("expected veto")
	}
	if n := host.Count(CallShouldAllowDismiss); n != 2 {
		t.Errorf("expected 2 recorded calls, got %d", n)
	}
}
