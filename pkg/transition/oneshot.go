package transition

import (
	"time"

	"github.com/go-drift/transit/pkg/animation"
)

// OneShot is a non-interactive transition between two poses.
type OneShot struct {
	From, To      Visual
	Duration      time.Duration
	Curve         animation.Curve
	Interruptible bool
}

// At returns the pose at progress p.
func (o OneShot) At(p float64) Visual {
	return LerpVisual(o.From, o.To, p)
}

// Reversed swaps the endpoints.
func (o OneShot) Reversed() OneShot {
	o.From, o.To = o.To, o.From
	return o
}

// Animator returns an animator that plays the transition when started.
// apply receives every frame's pose; done receives the outcome. An
// interruptible one-shot defers its first frame so a drag arriving in the
// same turn can take it over.
func (o OneShot) Animator(sched *animation.Scheduler, apply func(Visual), done func(finished bool)) *animation.PercentDrivenAnimator {
	a := animation.NewPercentDrivenAnimator(sched, o.Duration)
	if o.Curve != nil {
		a.CompletionCurve = o.Curve
	}
	a.Interruptible = o.Interruptible
	a.WantsInteractiveStart = o.Interruptible
	a.OnUpdate = func(p float64) {
		if apply != nil {
			apply(o.At(p))
		}
	}
	a.OnComplete = done
	return a
}
