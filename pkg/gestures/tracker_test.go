package gestures

import (
	"testing"

	"github.com/go-drift/transit/pkg/graphics"
)

func TestTracker_DeltaAndAdjusted(t *testing.T) {
	var tr Tracker
	step := tr.Track(Sample{Translation: graphics.Offset{Y: 10}, Phase: PhaseBegan})
	if step.Delta != (graphics.Offset{Y: 10}) || step.Adjusted != (graphics.Offset{Y: 10}) {
		t.Fatalf("unexpected first step %+v", step)
	}

	tr.SetOffset(graphics.Offset{Y: 4})
	step = tr.Track(Sample{Translation: graphics.Offset{Y: 25}, Phase: PhaseChanged})
	if step.Delta != (graphics.Offset{Y: 15}) {
		t.Errorf("expected delta 15, got %v", step.Delta)
	}
	if step.Adjusted != (graphics.Offset{Y: 21}) {
		t.Errorf("expected adjusted 21, got %v", step.Adjusted)
	}
}

func TestTracker_LastUpdatesOnEveryPhase(t *testing.T) {
	var tr Tracker
	for _, phase := range []Phase{PhaseBegan, PhaseChanged, PhaseEnded, PhaseCancelled, PhaseFailed} {
		tr.Track(Sample{Translation: graphics.Offset{X: float64(phase)}, Phase: phase})
		if tr.LastTranslation().X != float64(phase) {
			t.Errorf("phase %v did not update last translation", phase)
		}
	}
	tr.Reset()
	if !tr.LastTranslation().IsZero() || !tr.Offset().IsZero() {
		t.Error("reset should clear state")
	}
}

func TestParsePhase(t *testing.T) {
	for p := PhaseBegan; p <= PhaseFailed; p++ {
		got, err := ParsePhase(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePhase(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePhase("wiggle"); err == nil {
		t.Error("expected error for unknown phase")
	}
	if PhaseChanged.IsTerminal() || !PhaseFailed.IsTerminal() {
		t.Error("unexpected IsTerminal result")
	}
}
