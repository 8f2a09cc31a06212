// SPDX-License-Identifier: Unlicense OR MIT

/*
Package record implements a layout.Engine that records constraints
instead of solving them, together with a minimal view tree.

Activation only verifies that the related views share a common
ancestor; anything else is accepted. The recorded constraints can be
listed or written out as equations.
*/
package record

import (
	"fmt"
	"io"

	"gioui.org/autolayout/f32"
	"gioui.org/autolayout/layout"
)

// Engine records every constraint it creates.
type Engine struct {
	// version is incremented at each Reset.
	version     int
	constraints []*Constraint
}

// Constraint is a recorded constraint.
type Constraint struct {
	engine   *Engine
	version  int
	eq       layout.Equation
	priority layout.Priority
	active   bool
}

// View is a node of a view tree.
type View struct {
	Name   string
	Parent *View
	// Frame is the rectangle of the view in the coordinates of its
	// parent.
	Frame f32.Rectangle

	autoresizingOff bool
}

// NewView returns a view named name with the given parent and
// frame. A nil parent makes the view a root.
func NewView(name string, parent *View, frame f32.Rectangle) *View {
	return &View{Name: name, Parent: parent, Frame: frame}
}

// Bounds returns the frame of v moved to the origin.
func (v *View) Bounds() f32.Rectangle {
	return f32.Rectangle{Max: v.Frame.Size()}
}

func (v *View) DisableAutoresizing() {
	v.autoresizingOff = true
}

// Autoresizing reports whether the frame of v is still translated
// into constraints.
func (v *View) Autoresizing() bool {
	return !v.autoresizingOff
}

func (v *View) String() string {
	return v.Name
}

// CommonAncestor returns the closest view that is v or an ancestor
// of v, and is o or an ancestor of o. It returns nil if the views
// are in different trees.
func (v *View) CommonAncestor(o *View) *View {
	seen := make(map[*View]bool)
	for a := v; a != nil; a = a.Parent {
		seen[a] = true
	}
	for a := o; a != nil; a = a.Parent {
		if seen[a] {
			return a
		}
	}
	return nil
}

// NewConstraint records an inactive constraint with Required
// priority.
func (e *Engine) NewConstraint(eq layout.Equation) layout.Constraint {
	c := &Constraint{
		engine:   e,
		version:  e.version,
		eq:       eq,
		priority: layout.Required,
	}
	e.constraints = append(e.constraints, c)
	return c
}

// Reset discards the recorded constraints. Constraints created
// before the Reset can no longer be activated.
func (e *Engine) Reset() {
	e.version++
	e.constraints = nil
}

// Constraints returns the recorded constraints in creation order.
func (e *Engine) Constraints() []*Constraint {
	return e.constraints
}

// Active returns the active constraints in creation order.
func (e *Engine) Active() []*Constraint {
	var res []*Constraint
	for _, c := range e.constraints {
		if c.active {
			res = append(res, c)
		}
	}
	return res
}

// WriteTo writes the active constraints to w, one per line.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, c := range e.Active() {
		m, err := fmt.Fprintln(w, c)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *Constraint) Equation() layout.Equation {
	return c.eq
}

func (c *Constraint) Priority() layout.Priority {
	return c.priority
}

func (c *Constraint) SetPriority(p layout.Priority) {
	c.priority = p
}

func (c *Constraint) SetConstant(v float32) {
	c.eq.Constant = v
}

// Activate marks c active. It fails with an error wrapping
// layout.ErrUnsolvable if the views of the equation are not in the
// same tree.
func (c *Constraint) Activate() error {
	if c.version != c.engine.version {
		return fmt.Errorf("record: activate %v: constraint from before Reset", c.eq)
	}
	if !c.eq.IsConstant() {
		first, ok1 := c.eq.First.View.(*View)
		second, ok2 := c.eq.Second.View.(*View)
		if ok1 && ok2 && first.CommonAncestor(second) == nil {
			return fmt.Errorf("record: %s and %s have no common ancestor: %w", first, second, layout.ErrUnsolvable)
		}
	}
	c.active = true
	return nil
}

func (c *Constraint) Deactivate() {
	c.active = false
}

func (c *Constraint) Active() bool {
	return c.active
}

// String formats c as its equation followed by its priority.
func (c *Constraint) String() string {
	return fmt.Sprintf("%v @%v", c.eq, c.priority)
}
