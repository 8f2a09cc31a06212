// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gioui.org/autolayout/f32"
)

// Attribute names one measurable attribute of a view.
type Attribute uint8

// Priority is the weight an engine uses to decide which constraints
// to relax when the active set is unsatisfiable.
type Priority float32

const (
	// NotAnAttribute marks the missing second side of an Equation
	// that relates an attribute to a constant.
	NotAnAttribute Attribute = iota
	AttrTop
	AttrBottom
	AttrLeft
	AttrRight
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
)

const (
	Low      Priority = 250
	High     Priority = 750
	Required Priority = 1000
)

// ErrUnsolvable is returned, possibly wrapped, by an engine that
// cannot activate a constraint: the active set became unsatisfiable
// or the constrained views share no common ancestor.
var ErrUnsolvable = errors.New("unsolvable layout")

// View is a view of the host toolkit.
type View interface {
	// Bounds returns the rectangle of the view in its own
	// coordinate space.
	Bounds() f32.Rectangle
	// DisableAutoresizing stops the toolkit from translating the
	// frame of the view into constraints. Calling it more than once
	// has no further effect.
	DisableAutoresizing()
}

// Engine creates constraints.
type Engine interface {
	// NewConstraint returns an inactive constraint for eq. Both
	// anchor pairs and generic attribute pairs, such as an edge
	// against a scaled center line, are valid.
	NewConstraint(eq Equation) Constraint
}

// Constraint is a linear relation owned by an Engine.
type Constraint interface {
	Equation() Equation
	Priority() Priority
	SetPriority(p Priority)
	// SetConstant replaces the constant of the equation.
	SetConstant(c float32)
	// Activate adds the constraint to the set the engine solves.
	Activate() error
	Deactivate()
	Active() bool
}

// Anchor is an attribute of a view.
type Anchor struct {
	View      View
	Attribute Attribute
	// Safe selects the attribute of the restricted content area of
	// the view, excluding system reserved insets.
	Safe bool
}

// Equation describes the relation
//
//	First Relation Second*Multiplier + Constant
//
// Second is the zero Anchor when First is related to Constant alone.
type Equation struct {
	First      Anchor
	Relation   Relation
	Second     Anchor
	Multiplier float32
	Constant   float32
}

// IsConstant reports whether the equation has no second anchor.
func (e Equation) IsConstant() bool {
	return e.Second.Attribute == NotAnAttribute
}

// String formats the equation with views named by their fmt
// representation.
func (e Equation) String() string {
	var b strings.Builder
	b.WriteString(e.First.String())
	b.WriteByte(' ')
	b.WriteString(e.Relation.String())
	b.WriteByte(' ')
	if e.IsConstant() {
		b.WriteString(formatFloat(e.Constant))
		return b.String()
	}
	b.WriteString(e.Second.String())
	if e.Multiplier != 1 {
		b.WriteString("*")
		b.WriteString(formatFloat(e.Multiplier))
	}
	switch {
	case e.Constant > 0:
		b.WriteString(" + ")
		b.WriteString(formatFloat(e.Constant))
	case e.Constant < 0:
		b.WriteString(" - ")
		b.WriteString(formatFloat(-e.Constant))
	}
	return b.String()
}

func (a Anchor) String() string {
	n := fmt.Sprint(a.View)
	if a.Safe {
		n += ".safe"
	}
	return n + "." + a.Attribute.String()
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (a Attribute) String() string {
	switch a {
	case NotAnAttribute:
		return "none"
	case AttrTop:
		return "top"
	case AttrBottom:
		return "bottom"
	case AttrLeft:
		return "left"
	case AttrRight:
		return "right"
	case AttrWidth:
		return "width"
	case AttrHeight:
		return "height"
	case AttrCenterX:
		return "centerX"
	case AttrCenterY:
		return "centerY"
	default:
		panic("unreachable")
	}
}

func (p Priority) String() string {
	return formatFloat(float32(p))
}
