package layout

// Pipeline tracks whether the presented view owes a layout pass and
// withholds it while a live transform owns the view's geometry.
//
// The frame is mutated by exactly one authority at a time. While any hold
// is outstanding, ScheduleLayout only records that a pass is owed; the pass
// runs on the Flush after the last Release. Passes whose Result is zero are
// kept pending until valid geometry is available.
type Pipeline struct {
	resolver    Resolver
	params      Params
	hasParams   bool
	needsLayout bool
	holds       int
	applied     Result
}

// SetParams replaces the inputs of the next pass and schedules it when
// they changed.
func (p *Pipeline) SetParams(params Params) {
	if p.hasParams && p.params == params {
		return
	}
	p.params = params
	p.hasParams = true
	p.ScheduleLayout()
}

// Params returns the inputs of the next pass.
func (p *Pipeline) Params() Params {
	return p.params
}

// ScheduleLayout marks a pass as owed.
func (p *Pipeline) ScheduleLayout() {
	p.needsLayout = true
}

// NeedsLayout reports whether a pass is owed.
func (p *Pipeline) NeedsLayout() bool {
	return p.needsLayout
}

// Hold suppresses layout passes until the matching Release.
func (p *Pipeline) Hold() {
	p.holds++
}

// Release ends one Hold. Extra releases are ignored.
func (p *Pipeline) Release() {
	if p.holds > 0 {
		p.holds--
	}
}

// Held reports whether passes are currently suppressed.
func (p *Pipeline) Held() bool {
	return p.holds > 0
}

// Flush runs the owed pass and hands its Result to apply. It reports
// whether apply was called. Nothing runs while held, when no pass is
// owed, or when the pass produced no geometry.
func (p *Pipeline) Flush(apply func(Result)) bool {
	if p.holds > 0 || !p.needsLayout || !p.hasParams {
		return false
	}
	result := p.resolver.Resolve(p.params)
	if result.IsZero() {
		return false
	}
	p.needsLayout = false
	p.applied = result
	if apply != nil {
		apply(result)
	}
	return true
}

// Resolve computes geometry for params through the pipeline's cache
// without touching the owed pass. Live card drags use it every frame.
func (p *Pipeline) Resolve(params Params) Result {
	return p.resolver.Resolve(params)
}

// Applied returns the last Result handed to apply by Flush.
func (p *Pipeline) Applied() Result {
	return p.applied
}

// Passes returns how many uncached resolutions the pipeline performed.
func (p *Pipeline) Passes() int {
	return p.resolver.Passes()
}
