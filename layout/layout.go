// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout builds and activates constraints between views of a
constraint based layout engine.

A Pin binds a source view to an Engine. Its methods translate a
logical description, such as "my top to your bottom, offset by 8" or
"my width equals half of yours", into an Equation, ask the engine for
a Constraint, set its priority and activate it:

	p := layout.Pin{Engine: eng, View: header}
	p.Edges(layout.HorizontalEdges, root, layout.Options{Constant: 16})
	p.YEdge(layout.YTop, layout.YTop, root, layout.Options{Safe: true})
	p.Dimension(layout.Height, layout.Options{Constant: 44})

Constants are normalized so that a positive value always moves an
edge toward the center of the reference view: the constant of a
Bottom or Right edge is negated before it reaches the engine.

Calls over a set of edges, dimensions or axes return a result
record, Edges, Dimensions or Axes, with one slot per member of the
set.
*/
package layout

import "strings"

// Edge is one of the four edges of a view.
type Edge uint8

// XEdge is a horizontal edge, Left or Right.
type XEdge uint8

// YEdge is a vertical edge, Top or Bottom.
type YEdge uint8

// Dimension is the width or height of a view.
type Dimension uint8

// Axis is a center line of a view.
type Axis uint8

// Relation is the relational operator between the two sides of
// an Equation.
type Relation uint8

// EdgeSet is a set of Edges.
type EdgeSet uint8

// DimensionSet is a set of Dimensions.
type DimensionSet uint8

// AxisSet is a set of Axes.
type AxisSet uint8

const (
	Top Edge = iota
	Bottom
	Left
	Right
)

const (
	XLeft XEdge = iota
	XRight
)

const (
	YTop YEdge = iota
	YBottom
)

const (
	Width Dimension = iota
	Height
)

const (
	CenterX Axis = iota
	CenterY
)

const (
	Equal Relation = iota
	GreaterOrEqual
	LessOrEqual
)

const (
	TopEdge    EdgeSet = 1 << Top
	BottomEdge EdgeSet = 1 << Bottom
	LeftEdge   EdgeSet = 1 << Left
	RightEdge  EdgeSet = 1 << Right

	HorizontalEdges = LeftEdge | RightEdge
	VerticalEdges   = TopEdge | BottomEdge
	AllEdges        = VerticalEdges | HorizontalEdges
)

const (
	WidthDimension  DimensionSet = 1 << Width
	HeightDimension DimensionSet = 1 << Height

	AllDimensions = WidthDimension | HeightDimension
)

const (
	CenterXAxis AxisSet = 1 << CenterX
	CenterYAxis AxisSet = 1 << CenterY

	AllAxes = CenterXAxis | CenterYAxis
)

var (
	edges      = [...]Edge{Top, Bottom, Left, Right}
	dimensions = [...]Dimension{Width, Height}
	axes       = [...]Axis{CenterX, CenterY}
)

// EdgesOf returns the set containing es.
func EdgesOf(es ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range es {
		s |= 1 << e
	}
	return s
}

// Has reports whether e is in s.
func (s EdgeSet) Has(e Edge) bool {
	return s&(1<<e) != 0
}

// Len returns the number of edges in s.
func (s EdgeSet) Len() int {
	return len(s.Members())
}

// Members returns the edges of s in the order Top, Bottom, Left,
// Right.
func (s EdgeSet) Members() []Edge {
	var m []Edge
	for _, e := range edges {
		if s.Has(e) {
			m = append(m, e)
		}
	}
	return m
}

func (s EdgeSet) String() string {
	var names []string
	for _, e := range s.Members() {
		names = append(names, e.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// DimensionsOf returns the set containing ds.
func DimensionsOf(ds ...Dimension) DimensionSet {
	var s DimensionSet
	for _, d := range ds {
		s |= 1 << d
	}
	return s
}

// Has reports whether d is in s.
func (s DimensionSet) Has(d Dimension) bool {
	return s&(1<<d) != 0
}

// Len returns the number of dimensions in s.
func (s DimensionSet) Len() int {
	return len(s.Members())
}

// Members returns the dimensions of s, Width before Height.
func (s DimensionSet) Members() []Dimension {
	var m []Dimension
	for _, d := range dimensions {
		if s.Has(d) {
			m = append(m, d)
		}
	}
	return m
}

func (s DimensionSet) String() string {
	var names []string
	for _, d := range s.Members() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// AxesOf returns the set containing as.
func AxesOf(as ...Axis) AxisSet {
	var s AxisSet
	for _, a := range as {
		s |= 1 << a
	}
	return s
}

// Has reports whether a is in s.
func (s AxisSet) Has(a Axis) bool {
	return s&(1<<a) != 0
}

// Len returns the number of axes in s.
func (s AxisSet) Len() int {
	return len(s.Members())
}

// Members returns the axes of s, CenterX before CenterY.
func (s AxisSet) Members() []Axis {
	var m []Axis
	for _, a := range axes {
		if s.Has(a) {
			m = append(m, a)
		}
	}
	return m
}

func (s AxisSet) String() string {
	var names []string
	for _, a := range s.Members() {
		names = append(names, a.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Edge converts e to its Edge.
func (e XEdge) Edge() Edge {
	if e == XRight {
		return Right
	}
	return Left
}

// Edge converts e to its Edge.
func (e YEdge) Edge() Edge {
	if e == YBottom {
		return Bottom
	}
	return Top
}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		panic("unreachable")
	}
}

func (e XEdge) String() string { return e.Edge().String() }

func (e YEdge) String() string { return e.Edge().String() }

func (d Dimension) String() string {
	switch d {
	case Width:
		return "width"
	case Height:
		return "height"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case CenterX:
		return "centerX"
	case CenterY:
		return "centerY"
	default:
		panic("unreachable")
	}
}

func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	default:
		panic("unreachable")
	}
}
