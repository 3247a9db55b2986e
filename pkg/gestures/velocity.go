package gestures

import (
	"time"

	"github.com/go-drift/transit/pkg/graphics"
)

// velocitySmoothing is the weight kept from the previous estimate.
const velocitySmoothing = 0.8

// VelocityTracker estimates pointer velocity with exponential smoothing,
// which keeps fling detection stable against jittery input timestamps.
type VelocityTracker struct {
	velocity graphics.Offset
	last     graphics.Offset
	lastTime time.Time
	primed   bool
}

// Reset starts a new estimate at position.
func (v *VelocityTracker) Reset(position graphics.Offset, at time.Time) {
	v.velocity = graphics.Offset{}
	v.last = position
	v.lastTime = at
	v.primed = true
}

// Add records a new position and returns the updated estimate.
func (v *VelocityTracker) Add(position graphics.Offset, at time.Time) graphics.Offset {
	if !v.primed {
		v.Reset(position, at)
		return v.velocity
	}
	dt := at.Sub(v.lastTime).Seconds()
	if dt > 0 {
		inst := position.Sub(v.last).Scale(1 / dt)
		v.velocity = v.velocity.Scale(velocitySmoothing).Add(inst.Scale(1 - velocitySmoothing))
		v.lastTime = at
	}
	v.last = position
	return v.velocity
}

// Velocity returns the current estimate in points per second.
func (v *VelocityTracker) Velocity() graphics.Offset {
	return v.velocity
}
