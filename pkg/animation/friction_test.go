package animation

import (
	"math"
	"testing"
)

func TestResist_Zero(t *testing.T) {
	if got := Resist(0, 200, 1); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestResist_MonotonicAndSublinear(t *testing.T) {
	for _, coefficient := range []float64{0.25, 0.5, 1} {
		prev := 0.0
		for x := 1.0; x <= 2000; x += 7 {
			got := Resist(x, 200, coefficient)
			if got <= prev {
				t.Fatalf("c=%v: Resist(%v)=%v not greater than previous %v", coefficient, x, got, prev)
			}
			if got >= x {
				t.Fatalf("c=%v: Resist(%v)=%v not below input", coefficient, x, got)
			}
			prev = got
		}
	}
}

func TestResist_Mirrored(t *testing.T) {
	for _, x := range []float64{1, 50, 400} {
		if Resist(-x, 200, 0.5) != -Resist(x, 200, 0.5) {
			t.Errorf("Resist(-%v) is not the mirror of Resist(%v)", x, x)
		}
	}
}

func TestResist_KnownValue(t *testing.T) {
	// x equal to distance with coefficient 1 lands halfway to the limit.
	got := Resist(200, 200, 1)
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("expected 100, got %v", got)
	}
}

func TestResist_InvalidParameters(t *testing.T) {
	if Resist(50, 0, 1) != 0 || Resist(50, 200, 0) != 0 || Resist(50, -1, 1) != 0 {
		t.Error("expected 0 for non-positive distance or coefficient")
	}
}

func TestFriction_Limit(t *testing.T) {
	f := Friction{Distance: 200, Coefficient: 0.5}
	if f.Limit() != 100 {
		t.Errorf("expected limit 100, got %v", f.Limit())
	}
	if f.Apply(1e9) >= f.Limit() {
		t.Error("Apply should stay below the limit")
	}
	if DefaultFriction().Apply(10) != Resist(10, DefaultFrictionDistance, DefaultPrimaryFriction) {
		t.Error("DefaultFriction should use the primary coefficient")
	}
}
