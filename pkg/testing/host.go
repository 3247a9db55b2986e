package testing

import (
	"github.com/go-drift/transit/pkg/layout"
	"github.com/go-drift/transit/pkg/transition"
)

// CallKind names a host callback.
type CallKind string

const (
	CallTransformed         CallKind = "transformed"
	CallLayout              CallKind = "layout"
	CallWillBegin           CallKind = "will-begin"
	CallDidEnd              CallKind = "did-end"
	CallPerformPresentation CallKind = "perform-presentation"
	CallPerformDismissal    CallKind = "perform-dismissal"
	CallShouldAllowDismiss  CallKind = "should-allow-dismiss"
	CallInteraction         CallKind = "interaction"
)

// Call is one recorded host callback. Only the fields relevant to Kind are
// set.
type Call struct {
	Kind      CallKind
	Visual    transition.Visual
	Layout    layout.Result
	Direction transition.Direction
	Completed bool
	Percent   float64
}

// RecordingHost is a presentation host that records every call.
type RecordingHost struct {
	// Veto makes ShouldAllowDismiss return false.
	Veto bool
	// PanicOn makes the named callback panic after it is recorded.
	PanicOn CallKind
	// OnCall, when set, runs after each call is recorded.
	OnCall func(Call)

	Calls []Call
}

// NewRecordingHost returns an empty recording host.
func NewRecordingHost() *RecordingHost {
	return &RecordingHost{}
}

func (h *RecordingHost) record(c Call) {
	h.Calls = append(h.Calls, c)
	if h.OnCall != nil {
		h.OnCall(c)
	}
	if h.PanicOn == c.Kind {
		panic("recording host: " + string(c.Kind))
	}
}

func (h *RecordingHost) PresentedViewTransformed(v transition.Visual) {
	h.record(Call{Kind: CallTransformed, Visual: v})
}

func (h *RecordingHost) ApplyLayout(r layout.Result) {
	h.record(Call{Kind: CallLayout, Layout: r})
}

func (h *RecordingHost) TransitionWillBegin(d transition.Direction) {
	h.record(Call{Kind: CallWillBegin, Direction: d})
}

func (h *RecordingHost) TransitionDidEnd(d transition.Direction, completed bool) {
	h.record(Call{Kind: CallDidEnd, Direction: d, Completed: completed})
}

func (h *RecordingHost) PerformPresentation() {
	h.record(Call{Kind: CallPerformPresentation})
}

func (h *RecordingHost) PerformDismissal() {
	h.record(Call{Kind: CallPerformDismissal})
}

func (h *RecordingHost) ShouldAllowDismiss() bool {
	h.record(Call{Kind: CallShouldAllowDismiss})
	return !h.Veto
}

func (h *RecordingHost) InteractionDidChange(percent float64) {
	h.record(Call{Kind: CallInteraction, Percent: percent})
}

// Count returns how many calls of kind were recorded.
func (h *RecordingHost) Count(kind CallKind) int {
	n := 0
	for _, c := range h.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent call of kind.
func (h *RecordingHost) Last(kind CallKind) (Call, bool) {
	for i := len(h.Calls) - 1; i >= 0; i-- {
		if h.Calls[i].Kind == kind {
			return h.Calls[i], true
		}
	}
	return Call{}, false
}

// Visuals returns every applied pose in order.
func (h *RecordingHost) Visuals() []transition.Visual {
	var out []transition.Visual
	for _, c := range h.Calls {
		if c.Kind == CallTransformed {
			out = append(out, c.Visual)
		}
	}
	return out
}

// Kinds returns the kinds of all calls in order, skipping the per-frame
// ones listed in skip.
func (h *RecordingHost) Kinds(skip ...CallKind) []CallKind {
	var out []CallKind
outer:
	for _, c := range h.Calls {
		for _, k := range skip {
			if c.Kind == k {
				continue outer
			}
		}
		out = append(out, c.Kind)
	}
	return out
}

// Reset forgets all recorded calls.
func (h *RecordingHost) Reset() {
	h.Calls = nil
}
