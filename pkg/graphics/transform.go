package graphics

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Identity is the identity transform.
var Identity = matrix.Identity

// ScaleTranslate returns the transform that scales by scale about anchor
// and then translates by translation.
func ScaleTranslate(scale float64, translation, anchor Offset) matrix.Matrix {
	return matrix.Matrix{
		scale, 0,
		0, scale,
		(1-scale)*anchor.X + translation.X,
		(1-scale)*anchor.Y + translation.Y,
	}
}

// Translation returns a pure translation transform.
func Translation(t Offset) matrix.Matrix {
	return matrix.Translate(t.X, t.Y)
}

// Apply maps p through m.
func Apply(m matrix.Matrix, p Offset) Offset {
	x, y := m.Apply(p.X, p.Y)
	return Offset{X: x, Y: y}
}

// TransformRect returns the bounding box of r mapped through m.
func TransformRect(r Rect, m matrix.Matrix) Rect {
	corners := [4]Offset{
		Apply(m, Offset{X: r.Left, Y: r.Top}),
		Apply(m, Offset{X: r.Right, Y: r.Top}),
		Apply(m, Offset{X: r.Left, Y: r.Bottom}),
		Apply(m, Offset{X: r.Right, Y: r.Bottom}),
	}
	out := Rect{Left: corners[0].X, Top: corners[0].Y, Right: corners[0].X, Bottom: corners[0].Y}
	for _, c := range corners[1:] {
		out.Left = math.Min(out.Left, c.X)
		out.Top = math.Min(out.Top, c.Y)
		out.Right = math.Max(out.Right, c.X)
		out.Bottom = math.Max(out.Bottom, c.Y)
	}
	return out
}

// RectTransform returns the scale+translate transform mapping from onto to.
// Scaling is uniform and follows the width ratio, with the centers aligned.
func RectTransform(from, to Rect) matrix.Matrix {
	if from.IsEmpty() {
		return matrix.Identity
	}
	scale := to.Width() / from.Width()
	return ScaleTranslate(scale, to.Center().Sub(from.Center()), from.Center())
}

// LerpMatrix interpolates two transforms component-wise. This is exact for
// the scale+translate transforms used by the strategies.
func LerpMatrix(a, b matrix.Matrix, t float64) matrix.Matrix {
	var out matrix.Matrix
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

// IsIdentity reports whether m is the identity within epsilon.
func IsIdentity(m matrix.Matrix) bool {
	for i := range m {
		if !floatEqual(m[i], matrix.Identity[i]) {
			return false
		}
	}
	return true
}

// ScaleOf returns the horizontal scale factor encoded in m.
func ScaleOf(m matrix.Matrix) float64 {
	return math.Hypot(m[0], m[1])
}

// TranslationOf returns the translation component of m.
func TranslationOf(m matrix.Matrix) Offset {
	return Offset{X: m[4], Y: m[5]}
}
