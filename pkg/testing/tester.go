package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/transit/pkg/animation"
	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/presentation"
	"github.com/go-drift/transit/pkg/scroll"
	"github.com/go-drift/transit/pkg/transition"
)

const (
	// DefaultTestWidth is the default logical width of the container.
	DefaultTestWidth = 390
	// DefaultTestHeight is the default logical height of the container.
	DefaultTestHeight = 844
	// FrameDuration is how far the clock moves per pumped frame.
	FrameDuration = 16 * time.Millisecond
)

// DefaultSafeArea is the container's default safe-area insets.
var DefaultSafeArea = graphics.EdgeInsets{Top: 47, Bottom: 34}

// DefaultAnchor is the source element presentations grow from.
var DefaultAnchor = presentation.Anchor{
	Rect:         graphics.RectFromLTWH(20, 300, 160, 120),
	CornerRadius: 16,
}

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: scheduler did not settle")

// Tester wires a coordinator to a recording host, a fake clock and a
// scheduler. Drags are fed as samples, or as raw pointer events through a
// recognizer.
type Tester struct {
	Clock       *FakeClock
	Scheduler   *animation.Scheduler
	Host        *RecordingHost
	Scrolls     *scroll.Table
	Coordinator *presentation.Coordinator

	recognizer  gestures.Recognizer
	translation graphics.Offset
	dragging    bool
	scroll      scroll.Handle
}

// NewTester creates a tester with a container of the default size.
// Call Cleanup when done, or use NewTesterWithT instead.
func NewTester(opts ...presentation.Option) *Tester {
	clk := NewFakeClock()
	sched := animation.NewScheduler(clk)
	host := NewRecordingHost()
	table := &scroll.Table{}
	opts = append([]presentation.Option{presentation.WithScrollTable(table)}, opts...)
	t := &Tester{
		Clock:       clk,
		Scheduler:   sched,
		Host:        host,
		Scrolls:     table,
		Coordinator: presentation.New(sched, host, opts...),
	}
	t.recognizer.OnSample = t.Coordinator.HandleSample
	t.Coordinator.SetContainer(graphics.RectFromLTWH(0, 0, DefaultTestWidth, DefaultTestHeight), DefaultSafeArea)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTesterWithT(t *testing.T, opts ...presentation.Option) *Tester {
	tester := NewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops any running animation.
func (t *Tester) Cleanup() {
	t.Coordinator.Dispose()
}

// Present presents the view with kind from DefaultAnchor and settles.
func (t *Tester) Present(kind transition.Kind, opts transition.Options) error {
	return t.PresentWith(DefaultAnchor, presentation.Config{Kind: kind, Options: opts})
}

// PresentWith presents the view and settles.
func (t *Tester) PresentWith(anchor presentation.Anchor, cfg presentation.Config) error {
	if err := t.Coordinator.BeginPresentation(anchor, cfg); err != nil {
		return err
	}
	return t.PumpAndSettle(5 * time.Second)
}

// Pump runs one scheduler turn without moving the clock.
func (t *Tester) Pump() {
	t.Scheduler.Tick()
}

// PumpFor advances the clock by d one frame at a time, pumping each frame.
func (t *Tester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		t.Clock.Advance(FrameDuration)
		t.Pump()
	}
}

// PumpAndSettle runs frames until the scheduler is idle or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if t.Scheduler.Idle() {
			return nil
		}
		t.Clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Register adds a scroll view to the tester's table.
func (t *Tester) Register(v scroll.View) scroll.Handle {
	return t.Scrolls.Insert(v)
}
