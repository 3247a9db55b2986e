package testing

import (
	"testing"
	"time"

	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/layout"
	"github.com/go-drift/transit/pkg/presentation"
	"github.com/go-drift/transit/pkg/transition"
)

func TestDrag_Dismisses(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Present(transition.KindSlide, transition.Options{})

	tester.Drag(graphics.Offset{Y: 600}, graphics.Offset{Y: 2000})
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}

	if tester.Coordinator.IsPresented() {
		t.Error("expected view to be dismissed")
	}
	if n := tester.Host.Count(CallPerformDismissal); n != 1 {
		t.Errorf("expected one PerformDismissal, got %d", n)
	}
}

func TestCancelDrag_RestoresRest(t *testing.T) {
	for _, kind := range []transition.Kind{transition.KindSlide, transition.KindCard} {
		t.Run(kind.String(), func(t *testing.T) {
			tester := NewTesterWithT(t)
			err := tester.PresentWith(DefaultAnchor, presentation.Config{
				Kind:   kind,
				Layout: layout.Params{IdealSize: graphics.Size{Height: 400}},
			})
			if err != nil {
				t.Fatal(err)
			}
			restVisual := tester.Coordinator.Visual()
			restLayout, ok := tester.Host.Last(CallLayout)
			if !ok {
				t.Fatal("expected a resting layout")
			}

			tester.DragBy(graphics.Offset{Y: 200})
			moved, _ := tester.Host.Last(CallLayout)
			if tester.Coordinator.Visual() == restVisual && moved.Layout == restLayout.Layout {
				t.Fatal("expected drag to move the view")
			}
			tester.CancelDrag()
			if err := tester.PumpAndSettle(time.Second); err != nil {
				t.Fatal(err)
			}

			if got := tester.Coordinator.Visual(); got != restVisual {
				t.Errorf("expected rest pose %+v, got %+v", restVisual, got)
			}
			if got, _ := tester.Host.Last(CallLayout); got.Layout != restLayout.Layout {
				t.Errorf("expected rest layout %+v, got %+v", restLayout.Layout, got.Layout)
			}
			if got := tester.Coordinator.Layout(); got != restLayout.Layout {
				t.Errorf("expected coordinator layout %+v, got %+v", restLayout.Layout, got)
			}
			if n := tester.Host.Count(CallPerformDismissal); n != 0 {
				t.Errorf("expected no dismissal, got %d", n)
			}
		})
	}
}

func TestDragFrom_Pointer(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Present(transition.KindSlide, transition.Options{})

	tester.DragFrom(graphics.Offset{X: 200, Y: 300}, graphics.Offset{Y: 500})
	tester.PumpAndSettle(time.Second)

	if tester.Coordinator.IsPresented() {
		t.Error("expected pointer drag to dismiss")
	}
}

func TestDragFrom_BelowSlop(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Present(transition.KindSlide, transition.Options{})
	before := len(tester.Host.Calls)

	tester.DragFrom(graphics.Offset{X: 200, Y: 300}, graphics.Offset{Y: 4})
	tester.PumpAndSettle(time.Second)

	if len(tester.Host.Calls) != before {
		t.Errorf("expected no host calls, got %v", tester.Host.Kinds()[before:])
	}
}
