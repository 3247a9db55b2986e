package animation

// LerpFloat64 returns a + (b-a)*t.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}
