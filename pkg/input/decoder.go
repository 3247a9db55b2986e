//go:build linux

// Package input turns Linux evdev touch events into pointer events for a
// gestures.Recognizer.
//
// Only the primary contact is followed: slot 0 on multi-touch devices, or
// the single contact of a BTN_TOUCH device. Events are buffered until
// SYN_REPORT so a frame's X and Y arrive as one move.
package input

import (
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
)

// Range is the reported extent of an absolute axis.
type Range struct {
	Min, Max int32
}

// Scale maps v from r onto [0, size]. A zero size or a degenerate range
// keeps device units.
func (r Range) Scale(v int32, size float64) float64 {
	if size <= 0 || r.Max <= r.Min {
		return float64(v)
	}
	return float64(v-r.Min) * size / float64(r.Max-r.Min)
}

// Options controls coordinate scaling.
type Options struct {
	// Width and Height are the logical size touch positions are scaled
	// to. Zero keeps device units on that axis.
	Width, Height float64
}

// Decoder assembles pointer events from raw input events.
type Decoder struct {
	X, Y    Range
	Options Options

	slot      int32
	raw       [2]int32
	down      bool
	reported  bool
	dirty     bool
	pointerID int64
	last      graphics.Offset
}

// NewDecoder creates a decoder for a device with the given axis ranges.
func NewDecoder(x, y Range, opts Options) *Decoder {
	return &Decoder{X: x, Y: y, Options: opts}
}

// Decode consumes one input event and returns the pointer events it
// completes. Most events only update state and return nil.
func (d *Decoder) Decode(ev *evdev.InputEvent) []gestures.PointerEvent {
	switch ev.Type {
	case evdev.EV_ABS:
		d.abs(ev.Code, ev.Value)
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.down = ev.Value != 0
			d.dirty = true
		}
	case evdev.EV_SYN:
		switch ev.Code {
		case evdev.SYN_REPORT:
			return d.report(timestamp(ev))
		case evdev.SYN_DROPPED:
			return d.drop(timestamp(ev))
		}
	}
	return nil
}

// Position returns the last reported position in logical units.
func (d *Decoder) Position() graphics.Offset {
	return d.last
}

func (d *Decoder) abs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		d.slot = value
		return
	case evdev.ABS_X, evdev.ABS_Y:
	default:
		if d.slot != 0 {
			return
		}
	}
	switch code {
	case evdev.ABS_MT_TRACKING_ID:
		d.down = value >= 0
	case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
		d.raw[0] = value
	case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
		d.raw[1] = value
	default:
		return
	}
	d.dirty = true
}

func (d *Decoder) report(at time.Time) []gestures.PointerEvent {
	if !d.dirty {
		return nil
	}
	d.dirty = false
	pos := graphics.Offset{
		X: d.X.Scale(d.raw[0], d.Options.Width),
		Y: d.Y.Scale(d.raw[1], d.Options.Height),
	}
	var phase gestures.PointerPhase
	switch {
	case d.down && !d.reported:
		d.pointerID++
		phase = gestures.PointerPhaseDown
	case d.down:
		if pos == d.last {
			return nil
		}
		phase = gestures.PointerPhaseMove
	case d.reported:
		phase = gestures.PointerPhaseUp
	default:
		return nil
	}
	d.reported = d.down
	d.last = pos
	return []gestures.PointerEvent{{PointerID: d.pointerID, Position: pos, Phase: phase, Time: at}}
}

// drop handles SYN_DROPPED: buffered state is unreliable, so an active
// contact is cancelled and tracking starts over.
func (d *Decoder) drop(at time.Time) []gestures.PointerEvent {
	wasDown := d.reported
	d.down = false
	d.reported = false
	d.dirty = false
	d.slot = 0
	if !wasDown {
		return nil
	}
	return []gestures.PointerEvent{{PointerID: d.pointerID, Position: d.last, Phase: gestures.PointerPhaseCancel, Time: at}}
}

func timestamp(ev *evdev.InputEvent) time.Time {
	return time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond))
}
