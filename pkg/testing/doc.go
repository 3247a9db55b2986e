// Package testing drives transitions deterministically in tests.
//
// A [Tester] owns a [FakeClock], a scheduler and a [RecordingHost], and
// routes synthetic drags through the coordinator exactly as a gesture
// recognizer would:
//
//	tr := transittest.NewTesterWithT(t)
//	tr.Present(transition.KindSlide, transition.Options{})
//	tr.Drag(graphics.Offset{Y: 600})
//	tr.PumpAndSettle(time.Second)
//	if n := tr.Host.Count(transittest.CallPerformDismissal); n != 1 {
//		t.Errorf("expected one dismissal, got %d", n)
//	}
//
// Pump runs a single scheduler turn. PumpFor and PumpAndSettle move the
// clock one FrameDuration per turn.
//
// Recorded calls can be frozen into a [Snapshot] and compared with a golden
// JSON file through MatchesFile. Run with TRANSIT_UPDATE_SNAPSHOTS=1 to
// rewrite the goldens.
//
// The package name collides with the standard library, so import it as
// transittest.
package testing
