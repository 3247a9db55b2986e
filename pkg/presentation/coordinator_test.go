package presentation_test

import (
	"slices"
	"testing"
	"time"

	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/layout"
	"github.com/go-drift/transit/pkg/presentation"
	transittest "github.com/go-drift/transit/pkg/testing"
	"github.com/go-drift/transit/pkg/transition"
)

var _ presentation.Host = (*transittest.RecordingHost)(nil)
var _ presentation.InteractionObserver = (*transittest.RecordingHost)(nil)

func presented(t *testing.T, kind transition.Kind, opts ...presentation.Option) *transittest.Tester {
	t.Helper()
	tester := transittest.NewTesterWithT(t, opts...)
	if err := tester.Present(kind, transition.Options{}); err != nil {
		t.Fatalf("present: %v", err)
	}
	tester.Host.Reset()
	return tester
}

func settle(t *testing.T, tester *transittest.Tester) {
	t.Helper()
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func structural(h *transittest.RecordingHost) []transittest.CallKind {
	return h.Kinds(transittest.CallTransformed, transittest.CallLayout, transittest.CallInteraction)
}

func TestPresentThenInteractiveDismiss(t *testing.T) {
	tester := transittest.NewTesterWithT(t)
	if err := tester.Present(transition.KindSlide, transition.Options{}); err != nil {
		t.Fatal(err)
	}
	tester.Drag(graphics.Offset{Y: 500}, graphics.Offset{Y: 300})
	settle(t, tester)

	want := []transittest.CallKind{
		transittest.CallWillBegin,
		transittest.CallPerformPresentation,
		transittest.CallDidEnd,
		transittest.CallWillBegin,
		transittest.CallShouldAllowDismiss,
		transittest.CallPerformDismissal,
		transittest.CallDidEnd,
	}
	if got := structural(tester.Host); !slices.Equal(got, want) {
		t.Errorf("expected calls %v, got %v", want, got)
	}
	if tester.Coordinator.IsPresented() {
		t.Error("expected view to be dismissed")
	}
	if s := tester.Coordinator.State(); s != presentation.StateIdle {
		t.Errorf("expected idle, got %v", s)
	}
}

func TestSlowShortDragCancels(t *testing.T) {
	tester := presented(t, transition.KindSlide)
	rest := tester.Coordinator.Visual()

	tester.Drag(graphics.Offset{Y: 200}, graphics.Offset{})
	settle(t, tester)

	if !tester.Coordinator.IsPresented() {
		t.Fatal("expected view to stay presented")
	}
	if got := tester.Coordinator.Visual(); got != rest {
		t.Errorf("expected exact rest pose %+v, got %+v", rest, got)
	}
	end, _ := tester.Host.Last(transittest.CallDidEnd)
	if end.Completed || end.Direction != transition.Dismissing {
		t.Errorf("expected cancelled dismissal, got %+v", end)
	}
	if n := tester.Host.Count(transittest.CallShouldAllowDismiss); n != 0 {
		t.Errorf("expected no veto query on cancel, got %d", n)
	}
}

func TestPastThresholdCommits(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.Drag(graphics.Offset{Y: 500}, graphics.Offset{Y: 1})
	settle(t, tester)

	if tester.Coordinator.IsPresented() {
		t.Error("expected a push past the threshold to commit")
	}
}

func TestBackwardFlingCommits(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.Drag(graphics.Offset{Y: 100}, graphics.Offset{Y: -1500})
	settle(t, tester)

	if tester.Coordinator.IsPresented() {
		t.Error("expected a fast fling to commit regardless of direction")
	}
}

func TestCompletionIsContinuous(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.DragBy(graphics.Offset{Y: 300})
	released := tester.Coordinator.Visual()
	tester.Host.Reset()
	tester.EndDrag(graphics.Offset{Y: 2000})

	visuals := tester.Host.Visuals()
	if len(visuals) == 0 {
		t.Fatal("expected a frame on release")
	}
	if visuals[0] != released {
		t.Errorf("expected first completion frame to match release pose, got %+v want %+v", visuals[0], released)
	}
}

func TestVetoForcesCancel(t *testing.T) {
	var events []presentation.Event
	tester := presented(t, transition.KindSlide, presentation.WithObserver(presentation.ObserverFunc(func(e presentation.Event) {
		events = append(events, e)
	})))
	tester.Host.Veto = true
	rest := tester.Coordinator.Visual()

	tester.Drag(graphics.Offset{Y: 600}, graphics.Offset{Y: 3000})
	settle(t, tester)

	if !tester.Coordinator.IsPresented() {
		t.Fatal("expected veto to keep the view presented")
	}
	if n := tester.Host.Count(transittest.CallPerformDismissal); n != 0 {
		t.Errorf("expected no dismissal, got %d", n)
	}
	if got := tester.Coordinator.Visual(); got != rest {
		t.Errorf("expected rest pose after veto, got %+v", got)
	}
	vetoed := false
	for _, e := range events {
		if e.Phase == presentation.EventVetoed {
			vetoed = true
		}
	}
	if !vetoed {
		t.Error("expected a vetoed event")
	}
}

func TestReversalReturnsToTracking(t *testing.T) {
	tester := presented(t, transition.KindSlide)
	rest := tester.Coordinator.Visual()

	tester.DragBy(graphics.Offset{Y: 100})
	if s := tester.Coordinator.State(); s != presentation.StateInteractive {
		t.Fatalf("expected interactive, got %v", s)
	}
	tester.DragBy(graphics.Offset{Y: -150})

	if s := tester.Coordinator.State(); s != presentation.StateTracking {
		t.Errorf("expected tracking after reversal, got %v", s)
	}
	if _, ok := tester.Coordinator.Session(); ok {
		t.Error("expected session to be torn down")
	}
	if got := tester.Coordinator.Visual(); got != rest {
		t.Errorf("expected exact rest pose, got %+v", got)
	}

	tester.DragBy(graphics.Offset{Y: 500})
	if s := tester.Coordinator.State(); s != presentation.StateInteractive {
		t.Fatalf("expected a new interactive session, got %v", s)
	}
	tester.EndDrag(graphics.Offset{Y: 2000})
	settle(t, tester)

	if n := tester.Host.Count(transittest.CallPerformDismissal); n != 1 {
		t.Errorf("expected one dismissal, got %d", n)
	}
}

func TestDragTowardNonPermittedEdge(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.DragBy(graphics.Offset{Y: -200})
	if _, ok := tester.Coordinator.Session(); ok {
		t.Error("expected no session for an upward drag")
	}
	tester.EndDrag(graphics.Offset{Y: -3000})
	settle(t, tester)
	if !tester.Coordinator.IsPresented() {
		t.Error("expected view to stay presented")
	}
}

func TestRequestDismissIsIdempotent(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.Coordinator.RequestDismiss(true)
	tester.PumpFor(50 * time.Millisecond)
	tester.Coordinator.RequestDismiss(true)
	settle(t, tester)
	tester.Coordinator.RequestDismiss(true)
	settle(t, tester)

	if n := tester.Host.Count(transittest.CallPerformDismissal); n != 1 {
		t.Errorf("expected exactly one dismissal, got %d", n)
	}
	if n := tester.Host.Count(transittest.CallShouldAllowDismiss); n != 0 {
		t.Errorf("expected programmatic dismissal to skip the veto, got %d queries", n)
	}
}

func TestRequestDismissImmediate(t *testing.T) {
	tester := presented(t, transition.KindToast)

	tester.Coordinator.RequestDismiss(false)

	if tester.Coordinator.IsPresented() {
		t.Error("expected immediate dismissal")
	}
	if !tester.Scheduler.Idle() {
		t.Error("expected no animation for an immediate dismissal")
	}
	v := tester.Coordinator.Visual()
	if v.Alpha != 0 {
		t.Errorf("expected hidden toast, got alpha %v", v.Alpha)
	}
}

func TestRequestDismissDuringDragFinishes(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.DragBy(graphics.Offset{Y: 50})
	tester.Coordinator.RequestDismiss(true)
	if s := tester.Coordinator.State(); s != presentation.StateCommitting {
		t.Fatalf("expected committing, got %v", s)
	}
	tester.EndDrag(graphics.Offset{})
	settle(t, tester)

	if n := tester.Host.Count(transittest.CallPerformDismissal); n != 1 {
		t.Errorf("expected one dismissal, got %d", n)
	}
}

func TestInterceptPresentation(t *testing.T) {
	tester := transittest.NewTesterWithT(t)
	tester.Coordinator.BeginPresentation(transittest.DefaultAnchor, presentation.Config{Kind: transition.KindSlide})
	tester.PumpFor(120 * time.Millisecond)
	pose := tester.Coordinator.Visual()

	tester.SendSample(gestures.Sample{Translation: graphics.Offset{Y: 10}, Phase: gestures.PhaseBegan})

	if s := tester.Coordinator.State(); s != presentation.StateInteractive {
		t.Fatalf("expected interactive after interception, got %v", s)
	}
	if got := tester.Coordinator.Visual(); got != pose {
		t.Errorf("expected pose to be kept on interception, got %+v want %+v", got, pose)
	}
	end, ok := tester.Host.Last(transittest.CallDidEnd)
	if !ok || end.Direction != transition.Presenting {
		t.Errorf("expected presentation to end on interception, got %+v", end)
	}

	tester.SendSample(gestures.Sample{Translation: graphics.Offset{Y: 10}, Phase: gestures.PhaseEnded})
	settle(t, tester)
	if !tester.Coordinator.IsPresented() {
		t.Error("expected a still release to settle back to presented")
	}
	if n := tester.Host.Count(transittest.CallPerformPresentation); n != 1 {
		t.Errorf("expected one PerformPresentation, got %d", n)
	}
}

func TestFadeIsNotInterruptible(t *testing.T) {
	tester := transittest.NewTesterWithT(t)
	tester.Coordinator.BeginPresentation(transittest.DefaultAnchor, presentation.Config{Kind: transition.KindFade})
	tester.PumpFor(50 * time.Millisecond)

	tester.DragBy(graphics.Offset{Y: 300})
	if s := tester.Coordinator.State(); s != presentation.StateCommitting {
		t.Errorf("expected fade to keep running, got %v", s)
	}
	tester.EndDrag(graphics.Offset{Y: 3000})
	settle(t, tester)

	if !tester.Coordinator.IsPresented() {
		t.Fatal("expected fade to finish presenting")
	}
	tester.Drag(graphics.Offset{Y: 600}, graphics.Offset{Y: 3000})
	settle(t, tester)
	if !tester.Coordinator.IsPresented() {
		t.Error("expected fade to ignore interactive dismissal")
	}
}

func TestLayoutDeferredDuringSession(t *testing.T) {
	tester := presented(t, transition.KindSlide)

	tester.DragBy(graphics.Offset{Y: 100})
	tester.Coordinator.SetKeyboardHeight(300)
	if n := tester.Host.Count(transittest.CallLayout); n != 0 {
		t.Fatalf("expected no layout while interactive, got %d", n)
	}

	tester.EndDrag(graphics.Offset{})
	settle(t, tester)

	call, ok := tester.Host.Last(transittest.CallLayout)
	if !ok {
		t.Fatal("expected deferred layout after the session")
	}
	if want := float64(transittest.DefaultTestHeight) - 300; call.Layout.Frame.Bottom != want {
		t.Errorf("expected frame bottom %v, got %v", want, call.Layout.Frame.Bottom)
	}
}

func TestZeroLayoutNeverApplied(t *testing.T) {
	tester := transittest.NewTesterWithT(t)
	tester.Host.Reset()

	tester.Coordinator.SetContainer(graphics.Rect{}, graphics.EdgeInsets{})

	if n := tester.Host.Count(transittest.CallLayout); n != 0 {
		t.Errorf("expected empty container to apply nothing, got %d", n)
	}
}

func TestCardBounceDrivesLayout(t *testing.T) {
	tester := transittest.NewTesterWithT(t)
	err := tester.PresentWith(transittest.DefaultAnchor, presentation.Config{
		Kind:   transition.KindCard,
		Layout: layout.Params{IdealSize: graphics.Size{Height: 400}},
	})
	if err != nil {
		t.Fatal(err)
	}
	rest := tester.Coordinator.Layout().Frame
	tester.Host.Reset()

	tester.DragBy(graphics.Offset{Y: 80})

	call, ok := tester.Host.Last(transittest.CallLayout)
	if !ok {
		t.Fatal("expected live layout during a card drag")
	}
	if got := call.Layout.Frame.Top - rest.Top; got != 80 {
		t.Errorf("expected frame to follow the finger by 80, got %v", got)
	}

	tester.EndDrag(graphics.Offset{})
	settle(t, tester)
	call, _ = tester.Host.Last(transittest.CallLayout)
	if call.Layout.Frame != rest {
		t.Errorf("expected resting frame %+v after cancel, got %+v", rest, call.Layout.Frame)
	}
}

func TestHostPanicDoesNotStrand(t *testing.T) {
	tester := presented(t, transition.KindSlide)
	tester.Host.PanicOn = transittest.CallPerformDismissal

	tester.Drag(graphics.Offset{Y: 600}, graphics.Offset{Y: 3000})
	settle(t, tester)

	if tester.Coordinator.IsPresented() {
		t.Error("expected dismissal to resolve despite the panic")
	}
	if s := tester.Coordinator.State(); s != presentation.StateIdle {
		t.Errorf("expected idle, got %v", s)
	}
	end, ok := tester.Host.Last(transittest.CallDidEnd)
	if !ok || !end.Completed {
		t.Errorf("expected completed end, got %+v", end)
	}
}

func TestDidDismissTearsDown(t *testing.T) {
	tester := presented(t, transition.KindSlide)
	tester.DragBy(graphics.Offset{Y: 100})

	tester.Coordinator.DidDismiss()

	if tester.Coordinator.IsPresented() {
		t.Error("expected view to be dismissed")
	}
	if n := tester.Host.Count(transittest.CallPerformDismissal); n != 0 {
		t.Errorf("expected host-driven dismissal not to call back, got %d", n)
	}
	if _, ok := tester.Coordinator.Session(); ok {
		t.Error("expected no session")
	}
}

func TestNoLayoutAfterDismissal(t *testing.T) {
	tests := []struct {
		name    string
		dismiss func(*testing.T, *transittest.Tester)
	}{
		{"interactive", func(t *testing.T, tr *transittest.Tester) {
			tr.Drag(graphics.Offset{Y: 600}, graphics.Offset{Y: 3000})
			settle(t, tr)
		}},
		{"programmatic", func(_ *testing.T, tr *transittest.Tester) {
			tr.Coordinator.RequestDismiss(false)
		}},
		{"host removed", func(_ *testing.T, tr *transittest.Tester) {
			tr.DragBy(graphics.Offset{Y: 100})
			tr.Coordinator.DidDismiss()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := presented(t, transition.KindSlide)
			tt.dismiss(t, tester)
			tester.Host.Reset()

			tester.Coordinator.SetContainer(graphics.RectFromLTWH(0, 0, 600, 900), transittest.DefaultSafeArea)
			tester.Coordinator.SetKeyboardHeight(300)
			if n := tester.Host.Count(transittest.CallLayout); n != 0 {
				t.Fatalf("expected no layout for a removed view, got %d", n)
			}

			if err := tester.Present(transition.KindSlide, transition.Options{}); err != nil {
				t.Fatal(err)
			}
			call, ok := tester.Host.Last(transittest.CallLayout)
			if !ok {
				t.Fatal("expected the owed layout on the next presentation")
			}
			if call.Layout.Frame.Right != 600 {
				t.Errorf("expected frame to use the new container width, got %+v", call.Layout.Frame)
			}
		})
	}
}

func TestObserverEvents(t *testing.T) {
	var events []presentation.Event
	tester := presented(t, transition.KindSlide, presentation.WithObserver(presentation.ObserverFunc(func(e presentation.Event) {
		events = append(events, e)
	})))
	events = nil

	tester.Drag(graphics.Offset{Y: 600}, graphics.Offset{Y: 3000})
	settle(t, tester)

	if len(events) != 2 {
		t.Fatalf("expected began and ended events, got %+v", events)
	}
	if events[0].Phase != presentation.EventBegan || !events[0].Interactive {
		t.Errorf("expected interactive began, got %+v", events[0])
	}
	if events[1].Outcome != presentation.OutcomeCompleted || events[1].Elapsed <= 0 {
		t.Errorf("expected completed with elapsed time, got %+v", events[1])
	}
}

func TestUnknownKind(t *testing.T) {
	tester := transittest.NewTesterWithT(t)

	err := tester.Coordinator.BeginPresentation(transittest.DefaultAnchor, presentation.Config{Kind: transition.KindCustom + 3})
	if err == nil {
		t.Fatal("expected unknown kind error")
	}
}

func TestCustomStrategy(t *testing.T) {
	registry := &transition.Registry{}
	kind := registry.Register(transition.Toast{})
	tester := transittest.NewTesterWithT(t, presentation.WithRegistry(registry))

	if err := tester.Present(kind, transition.Options{}); err != nil {
		t.Fatal(err)
	}
	if !tester.Coordinator.IsPresented() {
		t.Error("expected custom kind to present")
	}
}
