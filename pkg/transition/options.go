package transition

import (
	"time"

	"github.com/go-drift/transit/pkg/animation"
	"github.com/go-drift/transit/pkg/graphics"
)

// Default option values.
const (
	DefaultMinimumScaleFactor      = 0.5
	DefaultCommitThreshold         = 0.5
	DefaultFlingVelocity           = 1000.0
	DefaultMatchedGeometryDistance = 200.0
	DefaultCornerRadius            = 12.0
	DefaultPresentingScale         = 0.92
	DefaultDuration                = 350 * time.Millisecond
)

// Options is the tuning surface shared by every strategy. Zero fields take
// their defaults through Normalize.
type Options struct {
	// Edges are the edges a drag may dismiss toward. Default: bottom.
	Edges graphics.EdgeSet
	// MinimumScaleFactor is the floor a matched-geometry drag scales to.
	MinimumScaleFactor float64
	// PrimaryFriction resists movement along the dismissal axis.
	PrimaryFriction float64
	// SecondaryFriction resists movement across the dismissal axis.
	SecondaryFriction float64
	// FrictionDistance is the distance parameter of the friction curve.
	FrictionDistance float64
	// CommitThreshold is the fraction of the distance past which any push
	// in the dismissal direction commits.
	CommitThreshold float64
	// FlingVelocity is the speed in points per second that commits
	// regardless of distance.
	FlingVelocity float64
	// MatchedGeometryDistance is the drag distance a matched-geometry
	// dismissal measures progress against.
	MatchedGeometryDistance float64
	// CornerRadius is the radius shown while a view is being moved.
	CornerRadius float64
	// PresentingScale is the scale of the presenting view while covered.
	PresentingScale float64
	// Duration is the length of a full non-interactive transition.
	Duration time.Duration
	// Curve eases non-interactive transitions and completions.
	Curve animation.Curve
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Edges:                   graphics.EdgeSetOf(graphics.EdgeBottom),
		MinimumScaleFactor:      DefaultMinimumScaleFactor,
		PrimaryFriction:         animation.DefaultPrimaryFriction,
		SecondaryFriction:       animation.DefaultSecondaryFriction,
		FrictionDistance:        animation.DefaultFrictionDistance,
		CommitThreshold:         DefaultCommitThreshold,
		FlingVelocity:           DefaultFlingVelocity,
		MatchedGeometryDistance: DefaultMatchedGeometryDistance,
		CornerRadius:            DefaultCornerRadius,
		PresentingScale:         DefaultPresentingScale,
		Duration:                DefaultDuration,
		Curve:                   animation.EaseOut,
	}
}

// Normalize returns o with every zero field replaced by its default.
func (o Options) Normalize() Options {
	d := DefaultOptions()
	if o.Edges.IsEmpty() {
		o.Edges = d.Edges
	}
	if o.MinimumScaleFactor <= 0 || o.MinimumScaleFactor > 1 {
		o.MinimumScaleFactor = d.MinimumScaleFactor
	}
	if o.PrimaryFriction <= 0 {
		o.PrimaryFriction = d.PrimaryFriction
	}
	if o.SecondaryFriction <= 0 {
		o.SecondaryFriction = d.SecondaryFriction
	}
	if o.FrictionDistance <= 0 {
		o.FrictionDistance = d.FrictionDistance
	}
	if o.CommitThreshold <= 0 {
		o.CommitThreshold = d.CommitThreshold
	}
	if o.FlingVelocity <= 0 {
		o.FlingVelocity = d.FlingVelocity
	}
	if o.MatchedGeometryDistance <= 0 {
		o.MatchedGeometryDistance = d.MatchedGeometryDistance
	}
	if o.CornerRadius < 0 {
		o.CornerRadius = 0
	} else if o.CornerRadius == 0 {
		o.CornerRadius = d.CornerRadius
	}
	if o.PresentingScale <= 0 || o.PresentingScale > 1 {
		o.PresentingScale = d.PresentingScale
	}
	if o.Duration <= 0 {
		o.Duration = d.Duration
	}
	if o.Curve == nil {
		o.Curve = d.Curve
	}
	return o
}

// Primary returns the friction along the dismissal axis.
func (o Options) Primary() animation.Friction {
	return animation.Friction{Distance: o.FrictionDistance, Coefficient: o.PrimaryFriction}
}

// Secondary returns the friction across the dismissal axis.
func (o Options) Secondary() animation.Friction {
	return animation.Friction{Distance: o.FrictionDistance, Coefficient: o.SecondaryFriction}
}

// Decision builds the commit predicates for o.
func (o Options) Decision() Decision {
	return Decision{
		Edges:           o.Edges,
		CommitThreshold: o.CommitThreshold,
		FlingVelocity:   o.FlingVelocity,
	}
}
