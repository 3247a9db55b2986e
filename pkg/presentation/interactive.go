package presentation

import (
	"github.com/go-drift/transit/pkg/animation"
	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/scroll"
)

// HandleSample feeds one sample of the drag recognized on the presented
// view itself.
func (c *Coordinator) HandleSample(sample gestures.Sample) {
	c.handleSample(sample)
}

func (c *Coordinator) handleSample(sample gestures.Sample) {
	if sample.Phase == gestures.PhaseBegan {
		c.ignoring = false
		if !c.began(sample) {
			return
		}
	} else if c.ignoring {
		if sample.Phase.IsTerminal() {
			c.ignoring = false
		}
		return
	}
	switch c.state {
	case StateTracking:
		c.track(sample)
	case StateInteractive:
		c.drive(sample)
	}
}

// began decides what a new drag does. It reports whether the sample
// should be processed further.
func (c *Coordinator) began(sample gestures.Sample) bool {
	if !c.presented || c.strategy == nil || !c.strategy.Interruptible() {
		c.ignoring = c.session != nil
		return false
	}
	s := c.session
	if s == nil {
		if c.state != StateTracking {
			c.tracker.Reset()
			c.setState(StateTracking)
		}
		return true
	}
	if c.state == StateInteractive {
		return true
	}
	if s.animator == nil || !s.animator.CanIntercept() {
		c.logger.Debug("drag ignored, transition not interruptible", "session", s.ID)
		c.ignoring = true
		return false
	}
	c.intercept(s, sample)
	return true
}

// intercept takes a running transition over with a drag. The view keeps
// its current pose and the new session measures progress from there.
func (c *Coordinator) intercept(old *Session, sample gestures.Sample) {
	pose := c.live
	p := old.animator.PercentComplete()
	if old.Direction == Presenting {
		p = 1 - p
	}
	edge := old.Edge
	if !old.InteractiveStart {
		if e, ok := c.decision.ShouldBegin(sample.Translation, sample.Translation, sample.Velocity); ok {
			edge = e
		}
	}
	c.logger.Debug("transition intercepted", "session", old.ID, "percent", p)
	c.endSession(old, OutcomeIntercepted)

	c.tracker.Reset()
	c.tracker.SetOffset(sample.Translation)
	s := c.beginInteractive(edge)
	ctx := c.context(edge)
	s.intercepted = true
	s.interceptAt = pose
	s.seed = seedTranslation(c.strategy, ctx, p)
	s.Rest = c.strategy.Rest(ctx)
}

func (c *Coordinator) beginInteractive(edge graphics.Edge) *Session {
	s := c.newSession(Dismissing, edge, true)
	s.TranslationOffset = c.tracker.Offset()
	ctx := c.context(edge)
	s.Rest = c.live
	s.end = c.strategy.OneShot(ctx, Dismissing).To

	a := animation.NewPercentDrivenAnimator(c.sched, c.options.Duration)
	a.Interruptible = c.strategy.Interruptible()
	a.CompletionCurve = c.options.Curve
	a.OnUpdate = func(p float64) { c.animatorUpdated(s, p) }
	a.OnComplete = func(finished bool) { c.interactiveCompleted(s, finished) }
	a.BeginInteractive()
	s.animator = a

	c.guard("TransitionWillBegin", func() { c.host.TransitionWillBegin(Dismissing) })
	c.setState(StateInteractive)
	return s
}

func (c *Coordinator) track(sample gestures.Sample) {
	step := c.tracker.Track(sample)
	if sample.Phase.IsTerminal() {
		c.handoff.Release()
		c.setState(StateIdle)
		return
	}
	edge, ok := c.decision.ShouldBegin(step.Adjusted, step.Delta, sample.Velocity)
	if !ok {
		return
	}
	s := c.beginInteractive(edge)
	s.LastTranslation = sample.Translation
	c.update(s, step.Adjusted)
}

func (c *Coordinator) drive(sample gestures.Sample) {
	s := c.session
	if s == nil {
		return
	}
	step := c.tracker.Track(sample)
	s.LastTranslation = sample.Translation
	switch sample.Phase {
	case gestures.PhaseBegan, gestures.PhaseChanged:
		if c.decision.ShouldCancel(s.Edge, s.effective(step.Adjusted), step.Delta) {
			c.reverse(s)
			return
		}
		c.update(s, step.Adjusted)
	case gestures.PhaseEnded:
		c.release(s, sample.Velocity)
	default:
		c.cancelInteractive(s)
	}
}

func (c *Coordinator) update(s *Session, adjusted graphics.Offset) {
	ctx := c.context(s.Edge)
	effective := s.effective(adjusted)
	s.drag = s.dragVisual(c.strategy.Transform(ctx, effective), adjusted)
	s.animator.Update(c.strategy.Progress(ctx, effective))
}

// reverse abandons s because the drag came back past its start. The rest
// pose is restored exactly and the drag keeps being tracked.
func (c *Coordinator) reverse(s *Session) {
	if c.live != s.Rest {
		c.apply(s.Rest)
	}
	c.endSession(s, OutcomeCancelled)
	c.setState(StateTracking)
}

// release resolves s when the finger lifts.
func (c *Coordinator) release(s *Session, velocity graphics.Offset) {
	v := s.Edge.Project(velocity)
	p := s.animator.PercentComplete()
	if !c.decision.ShouldCommit(p, v) {
		c.cancelInteractive(s)
		return
	}
	if !c.allowDismiss() {
		s.Vetoed = true
		c.logger.Info("dismissal vetoed", "session", s.ID, "percent", p)
		c.emit(s, EventVetoed, OutcomeNone)
		c.cancelInteractive(s)
		return
	}
	c.finishInteractive(s)
}

func (c *Coordinator) allowDismiss() bool {
	allowed := true
	ok := c.guard("ShouldAllowDismiss", func() { allowed = c.host.ShouldAllowDismiss() })
	return ok && allowed
}

func (c *Coordinator) finishInteractive(s *Session) {
	s.from = c.live
	s.fromPercent = s.animator.PercentComplete()
	c.setState(StateCommitting)
	s.animator.Finish()
}

func (c *Coordinator) cancelInteractive(s *Session) {
	s.from = c.live
	s.fromPercent = s.animator.PercentComplete()
	c.setState(StateCancelling)
	s.animator.Cancel()
}

func (c *Coordinator) animatorUpdated(s *Session, p float64) {
	if c.session != s {
		return
	}
	switch c.state {
	case StateInteractive:
		c.apply(s.drag)
		if o, ok := c.host.(InteractionObserver); ok {
			c.guard("InteractionDidChange", func() { o.InteractionDidChange(p) })
		}
	case StateCommitting:
		c.apply(s.completionVisual(p, true))
	case StateCancelling:
		c.apply(s.completionVisual(p, false))
	}
}

func (c *Coordinator) interactiveCompleted(s *Session, finished bool) {
	if c.session != s {
		return
	}
	if finished {
		if c.live != s.end {
			c.apply(s.end)
		}
		c.completeDismissal(s)
		return
	}
	if c.live != s.Rest {
		c.apply(s.Rest)
	}
	c.endSession(s, OutcomeCancelled)
}

// ShouldRecognizeSimultaneously answers whether the presented view's drag
// may run alongside the nested scroll view behind h. Accepting captures
// the scroll view: its drag must then be routed through
// HandleScrollSample.
func (c *Coordinator) ShouldRecognizeSimultaneously(h scroll.Handle) bool {
	if !c.presented || c.strategy == nil || !c.strategy.Interruptible() {
		return false
	}
	if c.session != nil || c.state != StateIdle {
		return false
	}
	return c.handoff.ShouldRecognizeSimultaneously(h, c.options.Edges)
}

// HandleScrollSample feeds one sample of the drag recognized by the nested
// scroll view behind h. Samples of a view that is not captured are
// ignored, except that a view scrolled back against its dismissal edge
// mid-drag hands the rest of the drag over to the transition.
func (c *Coordinator) HandleScrollSample(h scroll.Handle, sample gestures.Sample) {
	if sample.Phase == gestures.PhaseBegan {
		c.scrollReleased = false
		c.scrollLast = graphics.Offset{}
	}
	delta := sample.Translation.Sub(c.scrollLast)
	c.scrollLast = sample.Translation

	if !c.handoff.Captures(h) {
		if !c.handoffMidDrag(h, sample, delta) {
			return
		}
	}
	switch c.handoff.Forward(delta, c.state != StateInteractive) {
	case scroll.NotCaptured:
		return
	case scroll.Released:
		c.scrollReleased = true
		c.logger.Debug("scroll handoff released", "handle", h.String())
		if c.state == StateTracking {
			c.setState(StateIdle)
		}
		return
	}
	c.handleSample(sample)
	if sample.Phase.IsTerminal() {
		c.handoff.Release()
	}
}

// handoffMidDrag captures h when its content has come to rest against a
// dismissal edge and the drag keeps pushing toward that edge. The drag's
// translation so far becomes the session's baseline.
func (c *Coordinator) handoffMidDrag(h scroll.Handle, sample gestures.Sample, delta graphics.Offset) bool {
	if c.scrollReleased || sample.Phase != gestures.PhaseChanged {
		return false
	}
	if !c.ShouldRecognizeSimultaneously(h) {
		return false
	}
	capture, _ := c.handoff.Capture()
	if capture.Edge.Project(delta) <= 0 {
		c.handoff.Reset()
		return false
	}
	previous := sample.Translation.Sub(delta)
	c.tracker.Reset()
	c.tracker.SetOffset(previous)
	c.tracker.Track(gestures.Sample{Translation: previous, Phase: gestures.PhaseChanged})
	c.setState(StateTracking)
	c.logger.Debug("scroll handoff", "handle", h.String(), "offset", previous)
	return true
}
