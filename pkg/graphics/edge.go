package graphics

import (
	"fmt"
	"strings"
)

// Axis is a direction of layout or motion.
type Axis int

const (
	// AxisVertical is the y axis.
	AxisVertical Axis = iota
	// AxisHorizontal is the x axis.
	AxisHorizontal
)

// Orthogonal returns the other axis.
func (a Axis) Orthogonal() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Edge names one side of a rectangle. Leading and trailing follow a
// left-to-right layout direction.
type Edge int

const (
	// EdgeTop is the top side.
	EdgeTop Edge = iota
	// EdgeBottom is the bottom side.
	EdgeBottom
	// EdgeLeading is the left side.
	EdgeLeading
	// EdgeTrailing is the right side.
	EdgeTrailing
)

// AllEdges lists every edge in declaration order.
var AllEdges = [...]Edge{EdgeTop, EdgeBottom, EdgeLeading, EdgeTrailing}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge converts a name produced by Edge.String back into an Edge.
func ParseEdge(name string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	case "leading", "left":
		return EdgeLeading, nil
	case "trailing", "right":
		return EdgeTrailing, nil
	}
	return 0, fmt.Errorf("unknown edge %q", name)
}

// Axis returns the axis a drag toward e travels along.
func (e Edge) Axis() Axis {
	if e == EdgeLeading || e == EdgeTrailing {
		return AxisHorizontal
	}
	return AxisVertical
}

// Direction returns the unit vector of a drag moving toward e.
func (e Edge) Direction() Offset {
	switch e {
	case EdgeTop:
		return Offset{Y: -1}
	case EdgeBottom:
		return Offset{Y: 1}
	case EdgeLeading:
		return Offset{X: -1}
	case EdgeTrailing:
		return Offset{X: 1}
	}
	return Offset{}
}

// Opposite returns the edge across from e.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeading:
		return EdgeTrailing
	default:
		return EdgeLeading
	}
}

// Project returns the signed length of v along the direction of e.
// Positive values move toward e.
func (e Edge) Project(v Offset) float64 {
	return v.Dot(e.Direction())
}

// EdgeSet is a set of edges.
type EdgeSet uint8

// EdgeSetOf builds a set from edges.
func EdgeSetOf(edges ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s |= 1 << uint(e)
	}
	return s
}

// Contains reports whether e is in the set.
func (s EdgeSet) Contains(e Edge) bool {
	return s&(1<<uint(e)) != 0
}

// ContainsAxis reports whether any edge on axis is in the set.
func (s EdgeSet) ContainsAxis(axis Axis) bool {
	for _, e := range AllEdges {
		if e.Axis() == axis && s.Contains(e) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no edges.
func (s EdgeSet) IsEmpty() bool {
	return s == 0
}

// Edges returns the members in declaration order.
func (s EdgeSet) Edges() []Edge {
	out := make([]Edge, 0, len(AllEdges))
	for _, e := range AllEdges {
		if s.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s EdgeSet) String() string {
	names := make([]string, 0, len(AllEdges))
	for _, e := range s.Edges() {
		names = append(names, e.String())
	}
	return "[" + strings.Join(names, ",") + "]"
}
