package snapshot

import (
	"math"

	"github.com/go-drift/transit/pkg/graphics"
)

type pathOp int

const (
	opMove pathOp = iota
	opLine
	opQuad
)

type segment struct {
	op pathOp
	p  [2]graphics.Offset
}

// arcSteps is the number of quadratic segments per rounded corner.
const arcSteps = 2

// roundedRect outlines r clockwise with corners of the given radius,
// clamped to half the shorter side.
func roundedRect(r graphics.Rect, radius float64) []segment {
	radius = graphics.Clamp(radius, 0, math.Min(r.Width(), r.Height())/2)
	if radius == 0 {
		return []segment{
			{op: opMove, p: [2]graphics.Offset{{X: r.Left, Y: r.Top}}},
			{op: opLine, p: [2]graphics.Offset{{X: r.Right, Y: r.Top}}},
			{op: opLine, p: [2]graphics.Offset{{X: r.Right, Y: r.Bottom}}},
			{op: opLine, p: [2]graphics.Offset{{X: r.Left, Y: r.Bottom}}},
		}
	}
	// Corner centers, clockwise from top-right, with the angle each arc
	// starts at. Angles grow clockwise in y-down coordinates.
	corners := [4]struct {
		c     graphics.Offset
		start float64
	}{
		{graphics.Offset{X: r.Right - radius, Y: r.Top + radius}, -math.Pi / 2},
		{graphics.Offset{X: r.Right - radius, Y: r.Bottom - radius}, 0},
		{graphics.Offset{X: r.Left + radius, Y: r.Bottom - radius}, math.Pi / 2},
		{graphics.Offset{X: r.Left + radius, Y: r.Top + radius}, math.Pi},
	}
	segs := []segment{{op: opMove, p: [2]graphics.Offset{{X: r.Left + radius, Y: r.Top}}}}
	step := math.Pi / 2 / arcSteps
	reach := radius / math.Cos(step/2)
	for _, corner := range corners {
		segs = append(segs, segment{op: opLine, p: [2]graphics.Offset{polar(corner.c, radius, corner.start)}})
		for i := range arcSteps {
			a := corner.start + float64(i)*step
			segs = append(segs, segment{op: opQuad, p: [2]graphics.Offset{
				polar(corner.c, reach, a+step/2),
				polar(corner.c, radius, a+step),
			}})
		}
	}
	return segs
}

func polar(c graphics.Offset, r, angle float64) graphics.Offset {
	return graphics.Offset{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}
