package layout

// Resolver memoizes Resolve for repeated passes with unchanged inputs.
type Resolver struct {
	params Params
	result Result
	valid  bool
	passes int
}

// Resolve returns the cached Result when p matches the previous pass.
func (r *Resolver) Resolve(p Params) Result {
	if r.valid && r.params == p {
		return r.result
	}
	r.params = p
	r.result = Resolve(p)
	r.valid = true
	r.passes++
	return r.result
}

// Last returns the most recent Result and whether one exists.
func (r *Resolver) Last() (Result, bool) {
	return r.result, r.valid
}

// Invalidate forces the next Resolve to recompute.
func (r *Resolver) Invalidate() {
	r.valid = false
}

// Passes returns the number of uncached resolutions performed.
func (r *Resolver) Passes() int {
	return r.passes
}
