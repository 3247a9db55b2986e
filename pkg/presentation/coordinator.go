package presentation

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-drift/transit/pkg/animation"
	transiterrors "github.com/go-drift/transit/pkg/errors"
	"github.com/go-drift/transit/pkg/gestures"
	"github.com/go-drift/transit/pkg/graphics"
	"github.com/go-drift/transit/pkg/layout"
	"github.com/go-drift/transit/pkg/logging"
	"github.com/go-drift/transit/pkg/scroll"
	"github.com/go-drift/transit/pkg/transition"
)

var (
	// ErrBusy is returned when a presentation is requested while the view
	// is already presented or a session is in flight.
	ErrBusy = errors.New("presentation: already presented")
	// ErrUnknownKind is returned for a kind no registry resolves.
	ErrUnknownKind = errors.New("presentation: unknown transition kind")
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) { c.logger = logging.OrNop(l) }
}

// WithObserver receives session lifecycle events.
func WithObserver(o Observer) Option {
	return func(c *Coordinator) { c.observer = o }
}

// WithRegistry resolves custom transition kinds.
func WithRegistry(r *transition.Registry) Option {
	return func(c *Coordinator) { c.registry = r }
}

// WithScrollTable resolves the scroll handles passed to
// ShouldRecognizeSimultaneously and HandleScrollSample. The table stays
// owned by the caller.
func WithScrollTable(t *scroll.Table) Option {
	return func(c *Coordinator) { c.scrolls = t }
}

// Coordinator drives the presentation of one view. It is not safe for
// concurrent use; call it from the scheduler's loop, or hand work to it
// with Scheduler.Post.
type Coordinator struct {
	sched    *animation.Scheduler
	host     Host
	logger   *slog.Logger
	observer Observer
	registry *transition.Registry
	scrolls  *scroll.Table
	handoff  *scroll.Coordinator
	pipeline layout.Pipeline
	params   layout.Params

	strategy transition.Strategy
	kind     transition.Kind
	options  transition.Options
	decision transition.Decision
	anchor   Anchor

	state      State
	presented  bool
	// removed is set once the view leaves the hierarchy and cleared by
	// the next presentation. Layout passes stay owed meanwhile.
	removed    bool
	session    *Session
	tracker    gestures.Tracker
	ignoring   bool
	live       transition.Visual
	liveBounce float64
	nextID     uint64

	scrollLast     graphics.Offset
	scrollReleased bool
}

// New creates an idle coordinator.
func New(sched *animation.Scheduler, host Host, opts ...Option) *Coordinator {
	c := &Coordinator{
		sched:   sched,
		host:    host,
		logger:  logging.NewNop(),
		options: transition.DefaultOptions(),
		live:    transition.IdentityVisual(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scrolls == nil {
		c.scrolls = &scroll.Table{}
	}
	c.handoff = scroll.NewCoordinator(c.scrolls)
	c.decision = c.options.Decision()
	return c
}

// State returns the state machine's position.
func (c *Coordinator) State() State {
	return c.state
}

// IsPresented reports whether the view is structurally presented.
func (c *Coordinator) IsPresented() bool {
	return c.presented
}

// Session returns a snapshot of the active session.
func (c *Coordinator) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Visual returns the last pose handed to the host.
func (c *Coordinator) Visual() transition.Visual {
	return c.live
}

// Options returns the normalized options of the current presentation.
func (c *Coordinator) Options() transition.Options {
	return c.options
}

// Layout returns the last layout applied through the pipeline.
func (c *Coordinator) Layout() layout.Result {
	return c.pipeline.Applied()
}

// SetContainer updates the container bounds and safe area.
func (c *Coordinator) SetContainer(container graphics.Rect, safeArea graphics.EdgeInsets) {
	c.params.Container = container
	c.params.SafeArea = safeArea
	c.relayout()
}

// SetKeyboardHeight updates the software keyboard height. While the
// keyboard covers the content, nested scroll views hand over any drag in a
// dismissal direction.
func (c *Coordinator) SetKeyboardHeight(h float64) {
	c.params.KeyboardHeight = max(0, h)
	c.handoff.WantsInteractiveDismissal = c.params.KeyboardOverlap() > 0
	c.relayout()
}

// SetIdealSize updates the content's measured size.
func (c *Coordinator) SetIdealSize(s graphics.Size) {
	c.params.IdealSize = s
	c.relayout()
}

// SetLayout replaces the variant's geometry parameters, keeping the
// container, safe area, keyboard and ideal size set through the other
// setters when p leaves them zero.
func (c *Coordinator) SetLayout(p layout.Params) {
	if p.Container.IsEmpty() {
		p.Container = c.params.Container
	}
	if p.SafeArea == (graphics.EdgeInsets{}) {
		p.SafeArea = c.params.SafeArea
	}
	if p.KeyboardHeight == 0 {
		p.KeyboardHeight = c.params.KeyboardHeight
	}
	if p.IdealSize == (graphics.Size{}) {
		p.IdealSize = c.params.IdealSize
	}
	p.Bounce = 0
	c.params = p
	c.relayout()
}

// relayout schedules a pass and runs it unless a session holds layout.
func (c *Coordinator) relayout() {
	c.pipeline.SetParams(c.params)
	c.flushLayout()
}

func (c *Coordinator) flushLayout() {
	if c.removed {
		return
	}
	c.pipeline.Flush(func(r layout.Result) {
		c.liveBounce = 0
		c.logger.Debug("layout applied", "frame", r.Frame, "radius", r.CornerRadius)
		c.guard("ApplyLayout", func() { c.host.ApplyLayout(r) })
	})
}

// BeginPresentation presents the view from anchor. The host's
// PerformPresentation runs once, synchronously, before the first frame.
func (c *Coordinator) BeginPresentation(anchor Anchor, cfg Config) error {
	if c.presented || c.session != nil {
		return ErrBusy
	}
	strategy, ok := c.registry.Lookup(cfg.Kind)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKind, cfg.Kind)
	}
	c.strategy = strategy
	c.kind = cfg.Kind
	c.options = cfg.Options.Normalize()
	c.decision = c.options.Decision()
	c.anchor = anchor
	c.removed = false
	c.tracker.Reset()
	c.pipeline.ScheduleLayout()
	c.SetLayout(cfg.Layout)

	s := c.newSession(Presenting, c.firstEdge(), false)
	ctx := c.context(s.Edge)
	s.Rest = strategy.Rest(ctx)
	shot := strategy.OneShot(ctx, Presenting)
	s.oneShot = &shot

	c.guard("TransitionWillBegin", func() { c.host.TransitionWillBegin(Presenting) })
	c.presented = true
	c.guard("PerformPresentation", func() { c.host.PerformPresentation() })
	if c.session != s {
		// The host tore the presentation down from inside a callback.
		return nil
	}

	if cfg.Immediate {
		c.apply(s.Rest)
		c.endSession(s, OutcomeCompleted)
		return nil
	}
	c.apply(shot.From)
	c.setState(StateCommitting)
	c.startOneShot(s, shot)
	return nil
}

// RequestDismiss dismisses the presented view without a gesture. A
// dismissal already committing is left alone, so the structural dismissal
// still happens exactly once.
func (c *Coordinator) RequestDismiss(animated bool) {
	if !c.presented {
		return
	}
	if s := c.session; s != nil {
		switch {
		case s.Direction == Dismissing && c.state == StateCommitting:
			return
		case s.InteractiveStart && s.animator != nil && (c.state == StateInteractive || c.state == StateCancelling):
			c.finishInteractive(s)
			return
		default:
			c.endSession(s, OutcomeIntercepted)
		}
	}
	if c.state == StateTracking {
		c.handoff.Release()
		c.setState(StateIdle)
		c.ignoring = true
	}

	s := c.newSession(Dismissing, c.firstEdge(), false)
	ctx := c.context(s.Edge)
	s.Rest = c.strategy.Rest(ctx)
	shot := c.strategy.OneShot(ctx, Dismissing)
	shot.From = c.live
	s.oneShot = &shot
	c.guard("TransitionWillBegin", func() { c.host.TransitionWillBegin(Dismissing) })
	if !animated {
		c.apply(shot.To)
		c.completeDismissal(s)
		return
	}
	c.setState(StateCommitting)
	c.startOneShot(s, shot)
}

// DidPresent tells the coordinator the host presented the view on its own,
// for example when restoring state.
func (c *Coordinator) DidPresent() {
	if c.presented {
		return
	}
	c.presented = true
	c.removed = false
	if c.strategy == nil {
		c.strategy, _ = transition.Builtin(c.kind)
	}
	c.flushLayout()
}

// DidDismiss tells the coordinator the host removed the view on its own.
// Any session is torn down without a further PerformDismissal.
func (c *Coordinator) DidDismiss() {
	c.removed = true
	if s := c.session; s != nil {
		s.performed = true
		c.endSession(s, OutcomeAborted)
	}
	c.presented = false
	c.handoff.Reset()
	c.tracker.Reset()
	c.ignoring = false
	c.scrollReleased = false
	c.setState(StateIdle)
}

// Dispose stops any running animation. Nothing is reported to the host.
func (c *Coordinator) Dispose() {
	if s := c.session; s != nil && s.animator != nil {
		s.animator.Dispose()
	}
	c.session = nil
	c.state = StateIdle
}

func (c *Coordinator) firstEdge() graphics.Edge {
	edges := c.options.Edges.Edges()
	if len(edges) == 0 {
		return graphics.EdgeBottom
	}
	return edges[0]
}

func (c *Coordinator) context(edge graphics.Edge) transition.Context {
	frame := c.pipeline.Applied().Frame
	if frame.IsEmpty() {
		frame = c.pipeline.Resolve(c.params).Frame
	}
	return transition.Context{
		Container:          c.params.Container,
		Frame:              frame,
		Source:             c.anchor.Rect,
		SourceCornerRadius: c.anchor.CornerRadius,
		Edge:               edge,
		Options:            c.options,
	}
}

func (c *Coordinator) newSession(direction Direction, edge graphics.Edge, interactive bool) *Session {
	c.nextID++
	s := &Session{
		ID:                        c.nextID,
		Direction:                 direction,
		Edge:                      edge,
		InteractiveStart:          interactive,
		PermittedEdges:            c.options.Edges,
		WantsInteractiveDismissal: c.handoff.WantsInteractiveDismissal,
		Start:                     c.sched.Now(),
	}
	c.session = s
	c.pipeline.Hold()
	c.logger.Debug("session began", "session", s.ID, "direction", direction.String(), "kind", c.kind.String())
	c.emit(s, EventBegan, OutcomeNone)
	return s
}

// endSession closes s. Completed dismissals have already run
// PerformDismissal.
func (c *Coordinator) endSession(s *Session, outcome Outcome) {
	if s.ended {
		return
	}
	s.ended = true
	if s.animator != nil {
		s.animator.Dispose()
	}
	if c.session == s {
		c.session = nil
	}
	c.pipeline.Release()
	completed := outcome == OutcomeCompleted || (outcome == OutcomeIntercepted && s.Direction == Presenting)
	c.logger.Debug("session ended", "session", s.ID, "direction", s.Direction.String(), "outcome", outcome.String())
	c.emit(s, EventEnded, outcome)
	c.guard("TransitionDidEnd", func() { c.host.TransitionDidEnd(s.Direction, completed) })
	if c.session == nil && c.state != StateTracking {
		c.setState(StateIdle)
	}
	c.flushLayout()
}

func (c *Coordinator) startOneShot(s *Session, shot transition.OneShot) {
	a := shot.Animator(c.sched, func(v transition.Visual) {
		if c.session == s {
			c.apply(v)
		}
	}, func(finished bool) {
		if c.session != s {
			return
		}
		if !finished {
			c.apply(s.Rest)
			c.endSession(s, OutcomeCancelled)
			return
		}
		if s.Direction == Dismissing {
			c.completeDismissal(s)
			return
		}
		c.apply(s.Rest)
		c.endSession(s, OutcomeCompleted)
	})
	s.animator = a
	a.Start()
}

// completeDismissal performs the structural dismissal once and ends s.
func (c *Coordinator) completeDismissal(s *Session) {
	if !s.performed {
		s.performed = true
		c.presented = false
		c.removed = true
		c.guard("PerformDismissal", func() { c.host.PerformDismissal() })
	}
	c.handoff.Reset()
	c.endSession(s, OutcomeCompleted)
}

// apply hands v to the host. A card's bounce is turned into live geometry
// through the layout pipeline, bypassing the held pass.
func (c *Coordinator) apply(v transition.Visual) {
	c.live = v
	c.guard("PresentedViewTransformed", func() { c.host.PresentedViewTransformed(v) })
	if v.Bounce == c.liveBounce {
		return
	}
	c.liveBounce = v.Bounce
	params := c.params
	params.Bounce = v.Bounce
	if s := c.session; s != nil {
		params.BounceEdge = s.Edge
	}
	r := c.pipeline.Resolve(params)
	if r.IsZero() {
		return
	}
	c.guard("ApplyLayout", func() { c.host.ApplyLayout(r) })
}

func (c *Coordinator) setState(state State) {
	if c.state == state {
		return
	}
	c.logger.Debug("presentation state", "from", c.state.String(), "to", state.String())
	c.state = state
}

func (c *Coordinator) emit(s *Session, phase EventPhase, outcome Outcome) {
	if c.observer == nil {
		return
	}
	c.observer.TransitionEvent(Event{
		Session:     s.ID,
		Kind:        c.kind,
		Direction:   s.Direction,
		Interactive: s.InteractiveStart,
		Phase:       phase,
		Outcome:     outcome,
		Elapsed:     c.sched.Now().Sub(s.Start),
	})
}

// guard runs a host callback, reporting a panic as a host error.
func (c *Coordinator) guard(name string, fn func()) bool {
	op := "presentation." + name
	ok := transiterrors.Guard(op, fn)
	if !ok {
		var id uint64
		if c.session != nil {
			id = c.session.ID
		}
		c.logger.Warn("host callback panicked", "op", op, "session", id)
	}
	return ok
}
