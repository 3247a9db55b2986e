package animation

// Default friction parameters. The primary coefficient applies along the
// dismissal axis, the secondary one across it.
const (
	DefaultFrictionDistance  = 200.0
	DefaultPrimaryFriction   = 1.0
	DefaultSecondaryFriction = 0.5
)

// Resist maps a raw drag translation x onto an elastic, sub-linear
// displacement:
//
//	coefficient * distance * (1 - 1/(x*coefficient/distance + 1))
//
// Negative input is mirrored. The result approaches coefficient*distance
// asymptotically. A non-positive distance or coefficient yields 0.
func Resist(x, distance, coefficient float64) float64 {
	if distance <= 0 || coefficient <= 0 {
		return 0
	}
	if x < 0 {
		return -Resist(-x, distance, coefficient)
	}
	return coefficient * distance * (1 - 1/((x*coefficient/distance)+1))
}

// Friction bundles the parameters of [Resist].
type Friction struct {
	Distance    float64
	Coefficient float64
}

// DefaultFriction returns the primary-axis friction.
func DefaultFriction() Friction {
	return Friction{Distance: DefaultFrictionDistance, Coefficient: DefaultPrimaryFriction}
}

// Apply resists x.
func (f Friction) Apply(x float64) float64 {
	return Resist(x, f.Distance, f.Coefficient)
}

// Limit returns the displacement Apply approaches as x grows.
func (f Friction) Limit() float64 {
	if f.Distance <= 0 || f.Coefficient <= 0 {
		return 0
	}
	return f.Distance * f.Coefficient
}
