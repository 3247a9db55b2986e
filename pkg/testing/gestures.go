package testing

import (
	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/scroll"
)

// dragSteps is how many samples DragBy spreads a movement over.
const dragSteps = 8

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// DragBy moves the current drag by delta over several frames, starting a
// new drag with a Began sample when none is active. Each sample carries the
// velocity of its own step.
func (t *Tester) DragBy(delta graphics.Offset) {
	step := delta.Scale(1.0 / dragSteps)
	velocity := step.Scale(1 / FrameDuration.Seconds())
	for range dragSteps {
		t.translation = t.translation.Add(step)
		phase := gestures.PhaseChanged
		if !t.dragging {
			phase = gestures.PhaseBegan
			t.dragging = true
		}
		t.send(gestures.Sample{Translation: t.translation, Velocity: velocity, Phase: phase})
		t.Clock.Advance(FrameDuration)
		t.Pump()
	}
}

// EndDrag lifts the finger with the given release velocity.
func (t *Tester) EndDrag(velocity graphics.Offset) {
	t.finish(gestures.Sample{Translation: t.translation, Velocity: velocity, Phase: gestures.PhaseEnded})
}

// CancelDrag cancels the current drag.
func (t *Tester) CancelDrag() {
	t.finish(gestures.Sample{Translation: t.translation, Phase: gestures.PhaseCancelled})
}

// Drag performs a whole drag by delta released with velocity.
func (t *Tester) Drag(delta, velocity graphics.Offset) {
	t.DragBy(delta)
	t.EndDrag(velocity)
}

// ScrollDragBy is DragBy for a drag recognized by the scroll view behind h.
// The tester asks the coordinator whether to recognize simultaneously when
// the drag starts, the way a host's gesture system would.
func (t *Tester) ScrollDragBy(h scroll.Handle, delta graphics.Offset) {
	if !t.dragging {
		t.scroll = h
		t.Coordinator.ShouldRecognizeSimultaneously(h)
	}
	t.DragBy(delta)
}

// SendSample delivers s as is, bypassing the tester's drag bookkeeping.
func (t *Tester) SendSample(s gestures.Sample) {
	t.Coordinator.HandleSample(s)
}

func (t *Tester) finish(s gestures.Sample) {
	if !t.dragging {
		return
	}
	t.send(s)
	t.dragging = false
	t.translation = graphics.Offset{}
	t.scroll = scroll.Handle{}
	t.Pump()
}

func (t *Tester) send(s gestures.Sample) {
	if !t.scroll.IsZero() {
		t.Coordinator.HandleScrollSample(t.scroll, s)
		return
	}
	t.Coordinator.HandleSample(s)
}

// DragFrom simulates a pointer drag from start by delta through the
// tester's recognizer. The pointer moves in ten frames and is released.
func (t *Tester) DragFrom(start, delta graphics.Offset) {
	id := allocPointerID()
	t.SendPointerDown(start, id)
	steps := 10
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		t.Clock.Advance(FrameDuration)
		t.SendPointerMove(start.Add(delta.Scale(frac)), id)
		t.Pump()
	}
	t.SendPointerUp(start.Add(delta), id)
}

// SendPointerDown sends a pointer-down event at pos.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int64) {
	t.sendPointer(pos, pointerID, gestures.PointerPhaseDown)
}

// SendPointerMove sends a pointer-move event at pos.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int64) {
	t.sendPointer(pos, pointerID, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event at pos.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int64) {
	t.sendPointer(pos, pointerID, gestures.PointerPhaseUp)
}

// SendPointerCancel sends a pointer-cancel event.
func (t *Tester) SendPointerCancel(pointerID int64) {
	t.sendPointer(graphics.Offset{}, pointerID, gestures.PointerPhaseCancel)
}

func (t *Tester) sendPointer(pos graphics.Offset, pointerID int64, phase gestures.PointerPhase) {
	t.recognizer.HandleEvent(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     phase,
		Time:      t.Clock.Now(),
	})
}
