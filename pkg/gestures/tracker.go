package gestures

import "github.com/go-drift/transit/pkg/graphics"

// Step is the tracker's output for a single sample.
type Step struct {
	// Delta is the change in raw translation since the previous sample.
	Delta graphics.Offset
	// Adjusted is the raw translation minus the tracker's offset.
	Adjusted graphics.Offset
}

// Tracker accumulates a drag's translation relative to an offset baseline.
// One tracker is owned per active transition. It is not safe for
// concurrent use.
type Tracker struct {
	offset graphics.Offset
	last   graphics.Offset
}

// Track consumes a sample. The last translation is updated for every
// sample regardless of phase.
func (t *Tracker) Track(s Sample) Step {
	step := Step{
		Delta:    s.Translation.Sub(t.last),
		Adjusted: s.Translation.Sub(t.offset),
	}
	t.last = s.Translation
	return step
}

// SetOffset moves the baseline subtracted from subsequent translations.
func (t *Tracker) SetOffset(offset graphics.Offset) {
	t.offset = offset
}

// Offset returns the current baseline.
func (t *Tracker) Offset() graphics.Offset {
	return t.offset
}

// LastTranslation returns the raw translation of the most recent sample.
func (t *Tracker) LastTranslation() graphics.Offset {
	return t.last
}

// Reset clears the baseline and the last translation.
func (t *Tracker) Reset() {
	t.offset = graphics.Offset{}
	t.last = graphics.Offset{}
}
