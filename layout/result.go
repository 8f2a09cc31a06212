// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Edges holds the constraints of a call over an EdgeSet, one slot
// per edge. Slots of edges outside the set are nil.
type Edges struct {
	Top, Bottom, Left, Right Constraint
}

// Dimensions holds the constraints of a call over a DimensionSet.
type Dimensions struct {
	Width, Height Constraint
}

// Axes holds the constraints of a call over an AxisSet.
type Axes struct {
	CenterX, CenterY Constraint
}

// Set records c in the slot for e.
func (r *Edges) Set(e Edge, c Constraint) {
	*r.slot(e) = c
}

// Get returns the constraint recorded for e, or nil.
func (r Edges) Get(e Edge) Constraint {
	return *r.slot(e)
}

func (r *Edges) slot(e Edge) *Constraint {
	switch e {
	case Top:
		return &r.Top
	case Bottom:
		return &r.Bottom
	case Left:
		return &r.Left
	case Right:
		return &r.Right
	default:
		panic("unreachable")
	}
}

// Constraints returns the recorded constraints in the order Top,
// Bottom, Left, Right.
func (r Edges) Constraints() []Constraint {
	return compact(r.Top, r.Bottom, r.Left, r.Right)
}

// Deactivate deactivates every recorded constraint.
func (r Edges) Deactivate() {
	deactivate(r.Constraints())
}

// Set records c in the slot for d.
func (r *Dimensions) Set(d Dimension, c Constraint) {
	switch d {
	case Width:
		r.Width = c
	case Height:
		r.Height = c
	default:
		panic("unreachable")
	}
}

// Get returns the constraint recorded for d, or nil.
func (r Dimensions) Get(d Dimension) Constraint {
	switch d {
	case Width:
		return r.Width
	case Height:
		return r.Height
	default:
		panic("unreachable")
	}
}

// Constraints returns the recorded constraints, Width before Height.
func (r Dimensions) Constraints() []Constraint {
	return compact(r.Width, r.Height)
}

// Deactivate deactivates every recorded constraint.
func (r Dimensions) Deactivate() {
	deactivate(r.Constraints())
}

// Set records c in the slot for a.
func (r *Axes) Set(a Axis, c Constraint) {
	switch a {
	case CenterX:
		r.CenterX = c
	case CenterY:
		r.CenterY = c
	default:
		panic("unreachable")
	}
}

// Get returns the constraint recorded for a, or nil.
func (r Axes) Get(a Axis) Constraint {
	switch a {
	case CenterX:
		return r.CenterX
	case CenterY:
		return r.CenterY
	default:
		panic("unreachable")
	}
}

// Constraints returns the recorded constraints, CenterX before
// CenterY.
func (r Axes) Constraints() []Constraint {
	return compact(r.CenterX, r.CenterY)
}

// Deactivate deactivates every recorded constraint.
func (r Axes) Deactivate() {
	deactivate(r.Constraints())
}

func compact(cs ...Constraint) []Constraint {
	var res []Constraint
	for _, c := range cs {
		if c != nil {
			res = append(res, c)
		}
	}
	return res
}

func deactivate(cs []Constraint) {
	for _, c := range cs {
		c.Deactivate()
	}
}
