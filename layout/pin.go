// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"github.com/rs/zerolog"

	"gioui.org/autolayout/f32"
)

// Pin creates constraints from its View to other views. Every
// method disables autoresizing of View, builds an Equation, sets the
// priority of the resulting constraint and activates it.
//
// Errors from activation are returned wrapped; the engine decides
// what is unsolvable. A method over a set stops at the first error
// and returns the constraints recorded so far.
type Pin struct {
	Engine Engine
	View   View
	// Log, if set, traces every activated constraint at debug level.
	Log *zerolog.Logger
}

// Options configure a single Pin call. The zero value relates with
// Equal, no constant, multiplier 1 and Required priority against the
// raw edges of the target.
type Options struct {
	Relation Relation
	// Constant offsets the equation. For edges a positive constant
	// moves the edge toward the center of the target.
	Constant float32
	// Multiplier scales the target dimension. Zero means 1. Edge and
	// axis equations ignore it.
	Multiplier float32
	// Priority of the constraint. Zero means Required.
	Priority Priority
	// Safe relates edges to the restricted content area of the
	// target.
	Safe bool
}

// edgeAnchor maps an edge to its attribute, the sign applied to
// caller constants and the center line running across it.
type edgeAnchor struct {
	attr   Attribute
	sign   float32
	center Attribute
}

var edgeAnchors = [...]edgeAnchor{
	Top:    {attr: AttrTop, sign: 1, center: AttrCenterY},
	Bottom: {attr: AttrBottom, sign: -1, center: AttrCenterY},
	Left:   {attr: AttrLeft, sign: 1, center: AttrCenterX},
	Right:  {attr: AttrRight, sign: -1, center: AttrCenterX},
}

var dimensionAttrs = [...]Attribute{
	Width:  AttrWidth,
	Height: AttrHeight,
}

var axisAttrs = [...]Attribute{
	CenterX: AttrCenterX,
	CenterY: AttrCenterY,
}

func (o Options) multiplier() float32 {
	if o.Multiplier == 0 {
		return 1
	}
	return o.Multiplier
}

func (o Options) priority() Priority {
	return priorityOrRequired(o.Priority)
}

func priorityOrRequired(p Priority) Priority {
	if p == 0 {
		return Required
	}
	return p
}

// Edge pins edge e to the same edge of to.
func (p Pin) Edge(e Edge, to View, o Options) (Constraint, error) {
	a := edgeAnchors[e]
	return p.edge(e, Anchor{View: to, Attribute: a.attr, Safe: o.Safe}, o)
}

// Edges pins every edge of s to the same edge of to.
func (p Pin) Edges(s EdgeSet, to View, o Options) (Edges, error) {
	var r Edges
	for _, e := range s.Members() {
		c, err := p.Edge(e, to, o)
		if err != nil {
			return r, err
		}
		r.Set(e, c)
	}
	return r, nil
}

// XEdge pins horizontal edge e to edge other of to. The sign of the
// constant follows e.
func (p Pin) XEdge(e, other XEdge, to View, o Options) (Constraint, error) {
	a := edgeAnchors[other.Edge()]
	return p.edge(e.Edge(), Anchor{View: to, Attribute: a.attr, Safe: o.Safe}, o)
}

// YEdge pins vertical edge e to edge other of to. The sign of the
// constant follows e.
func (p Pin) YEdge(e, other YEdge, to View, o Options) (Constraint, error) {
	a := edgeAnchors[other.Edge()]
	return p.edge(e.Edge(), Anchor{View: to, Attribute: a.attr, Safe: o.Safe}, o)
}

// XEdgeToCenter pins horizontal edge e to the vertical center line
// of to. Center lines have no restricted variant and o.Safe is
// ignored.
func (p Pin) XEdgeToCenter(e XEdge, to View, o Options) (Constraint, error) {
	return p.edge(e.Edge(), Anchor{View: to, Attribute: AttrCenterX}, o)
}

// YEdgeToCenter pins vertical edge e to the horizontal center line
// of to. o.Safe is ignored.
func (p Pin) YEdgeToCenter(e YEdge, to View, o Options) (Constraint, error) {
	return p.edge(e.Edge(), Anchor{View: to, Attribute: AttrCenterY}, o)
}

func (p Pin) edge(e Edge, target Anchor, o Options) (Constraint, error) {
	p.View.DisableAutoresizing()
	a := edgeAnchors[e]
	return p.activate(Equation{
		First:      Anchor{View: p.View, Attribute: a.attr},
		Relation:   o.Relation,
		Second:     target,
		Multiplier: 1,
		Constant:   a.sign * o.Constant,
	}, o.priority())
}

// Dimension relates dimension d to o.Constant.
func (p Pin) Dimension(d Dimension, o Options) (Constraint, error) {
	p.View.DisableAutoresizing()
	return p.activate(Equation{
		First:      Anchor{View: p.View, Attribute: dimensionAttrs[d]},
		Relation:   o.Relation,
		Multiplier: 1,
		Constant:   o.Constant,
	}, o.priority())
}

// DimensionTo relates dimension d to the same dimension of to,
// scaled by o.Multiplier and offset by o.Constant.
func (p Pin) DimensionTo(d Dimension, to View, o Options) (Constraint, error) {
	return p.DimensionToOther(d, d, to, o)
}

// DimensionToOther relates dimension d to dimension other of to.
func (p Pin) DimensionToOther(d, other Dimension, to View, o Options) (Constraint, error) {
	p.View.DisableAutoresizing()
	return p.activate(Equation{
		First:      Anchor{View: p.View, Attribute: dimensionAttrs[d]},
		Relation:   o.Relation,
		Second:     Anchor{View: to, Attribute: dimensionAttrs[other]},
		Multiplier: o.multiplier(),
		Constant:   o.Constant,
	}, o.priority())
}

// Dimensions relates every dimension of s to the same dimension of
// to.
func (p Pin) Dimensions(s DimensionSet, to View, o Options) (Dimensions, error) {
	var r Dimensions
	for _, d := range s.Members() {
		c, err := p.DimensionTo(d, to, o)
		if err != nil {
			return r, err
		}
		r.Set(d, c)
	}
	return r, nil
}

// Axis aligns center line a with the same center line of to. The
// constant is applied as is.
func (p Pin) Axis(a Axis, to View, o Options) (Constraint, error) {
	p.View.DisableAutoresizing()
	attr := axisAttrs[a]
	return p.activate(Equation{
		First:      Anchor{View: p.View, Attribute: attr},
		Relation:   o.Relation,
		Second:     Anchor{View: to, Attribute: attr},
		Multiplier: 1,
		Constant:   o.Constant,
	}, o.priority())
}

// Axes aligns every center line of s with the same center line of
// to.
func (p Pin) Axes(s AxisSet, to View, o Options) (Axes, error) {
	var r Axes
	for _, a := range s.Members() {
		c, err := p.Axis(a, to, o)
		if err != nil {
			return r, err
		}
		r.Set(a, c)
	}
	return r, nil
}

// EdgeAt pins edge e to the position pos along the extent of to
// that runs across e: vertically for Top and Bottom, horizontally
// for Left and Right. Position 0 is the leading edge of to, 0.5 its
// center and 1 its trailing edge. Positions outside [0, 1]
// extrapolate linearly.
//
// The constraint relates e to the center line of to scaled by
// 2*pos, which requires the generic attribute form of Equation.
func (p Pin) EdgeAt(e Edge, to View, pos float32, prio Priority) (Constraint, error) {
	p.View.DisableAutoresizing()
	a := edgeAnchors[e]
	return p.activate(Equation{
		First:      Anchor{View: p.View, Attribute: a.attr},
		Relation:   Equal,
		Second:     Anchor{View: to, Attribute: a.center},
		Multiplier: pos * 2,
	}, priorityOrRequired(prio))
}

// CenterAt centers View at pt, given in the bounds coordinates of
// in.
func (p Pin) CenterAt(pt f32.Point, in View, prio Priority) (Axes, error) {
	var r Axes
	rel := pt.Sub(in.Bounds().Center())
	o := Options{Priority: prio}
	o.Constant = rel.Y
	cy, err := p.Axis(CenterY, in, o)
	if err != nil {
		return r, err
	}
	r.Set(CenterY, cy)
	o.Constant = rel.X
	cx, err := p.Axis(CenterX, in, o)
	if err != nil {
		return r, err
	}
	r.Set(CenterX, cx)
	return r, nil
}

func (p Pin) activate(eq Equation, prio Priority) (Constraint, error) {
	c := p.Engine.NewConstraint(eq)
	c.SetPriority(prio)
	if err := c.Activate(); err != nil {
		if p.Log != nil {
			p.Log.Debug().Err(err).Stringer("equation", eq).Msg("activation failed")
		}
		return nil, fmt.Errorf("layout: activate %v: %w", eq, err)
	}
	if p.Log != nil {
		p.Log.Debug().Stringer("equation", eq).Stringer("priority", prio).Msg("constraint activated")
	}
	return c, nil
}
