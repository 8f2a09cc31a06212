// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strconv"

	"gioui.org/autolayout/f32"
)

type formatState struct {
	current int
	orig    string
	expr    string
	pin     Pin
	views   []View
	out     []Constraint
}

type formatError string

// activateError carries an engine error out of the parser.
type activateError struct {
	err error
}

// FormatError is returned by Format for an invalid format string.
type FormatError struct {
	// Format is the format string with a cross, ✗, at the error
	// position.
	Format string
	Pos    int
	Msg    string
}

// formatArgs are the parsed arguments of a single call.
type formatArgs struct {
	to      View
	attr    string
	names   []string
	numbers []float32
	opts    Options
}

// Format issues the Pin calls described by a format string, similar
// to how fmt.Printf interpolates a string, and returns the activated
// constraints in the order they were created.
//
// The format string is a sequence of calls. The underscore denotes a
// view from the arguments; the ith _ refers to the ith view. An
// underscore may be followed by a period and an attribute name to
// select another attribute of the view.
//
// For example,
//
//	layout.Format(p, "edges(_, 8, safe) height(44)", parent)
//
// is equivalent to
//
//	p.Edges(layout.AllEdges, parent, layout.Options{Constant: 8, Safe: true})
//	p.Dimension(layout.Height, layout.Options{Constant: 44})
//
// Available calls:
//
//	top/bottom/left/right(_) pins the edge to the same edge of the
//	view. _.<edge> pins it to another edge of the same orientation and
//	_.center to the center line running across it.
//
//	edges/hedges/vedges(_) pins all, the horizontal or the vertical
//	edges.
//
//	width/height(<constant>) fixes the dimension. width/height(_)
//	relates it to the same dimension of the view, _.width or _.height
//	to another one.
//
//	size(<constant>) and size(_) do the same for both dimensions.
//
//	aspect(<ratio>) relates the width to the height and
//	heightratio(<ratio>) the height to the width.
//
//	centerx/centery/center(_) aligns one or both center lines.
//
//	at(<edge>, _, <position>) pins the edge to a normalized position
//	along the view.
//
//	centerat(_, <x>, <y>) centers at a point of the view.
//
// Arguments other than views are: a number for the constant, *<n>
// for the multiplier, @<n> for the priority, one of ==, >= and <= for
// the relation and safe for the restricted content area. A call
// rejects the arguments it has no use for.
//
// Format returns a *FormatError if the format is invalid, and the
// engine error if an activation fails. Constraints activated before
// the failure are returned as well.
func Format(p Pin, format string, views ...View) (cs []Constraint, err error) {
	state := &formatState{
		orig:  format,
		expr:  format,
		pin:   p,
		views: views,
	}
	defer func() {
		cs = state.out
		e := recover()
		if e == nil {
			return
		}
		switch e := e.(type) {
		case formatError:
			pos := len(state.orig) - len(state.expr)
			err = &FormatError{
				Format: state.orig[:pos] + "✗" + state.orig[pos:],
				Pos:    pos,
				Msg:    string(e),
			}
		case activateError:
			err = e.err
		default:
			panic(e)
		}
	}()
	formatExpr(state)
	return state.out, nil
}

func formatExpr(state *formatState) {
	for {
		skipWhitespace(state)
		if len(state.expr) == 0 {
			break
		}
		formatCall(state)
	}
	if n := len(state.views) - state.current; n > 0 {
		errorf("%d unused views", n)
	}
}

func formatCall(state *formatState) {
	name := parseName(state)
	if name == "" {
		errorf("missing call name")
	}
	expect(state, "(")
	if name == "at" {
		formatAt(state)
		expect(state, ")")
		return
	}
	args := parseArgs(state)
	p := state.pin
	switch name {
	case "top", "bottom", "left", "right":
		e, _ := edgeFor(name)
		formatEdge(state, e, args)
	case "edges", "hedges", "vedges":
		args.noAttr(name)
		args.noMultiplier(name)
		set := AllEdges
		switch name {
		case "hedges":
			set = HorizontalEdges
		case "vedges":
			set = VerticalEdges
		}
		res, err := p.Edges(set, args.target(), args.constant())
		emit(state, res.Constraints(), err)
	case "width", "height":
		d, _ := dimensionFor(name)
		formatDimension(state, d, args)
	case "size":
		args.noAttr(name)
		args.noSafe(name)
		o := args.constant()
		var res Dimensions
		var err error
		if args.to == nil {
			if len(args.numbers) == 0 {
				errorf("size needs a view or a constant")
			}
			args.noMultiplier(name)
			res, err = p.Size(o)
		} else {
			res, err = p.SizeTo(args.target(), o)
		}
		emit(state, res.Constraints(), err)
	case "aspect":
		if args.to != nil {
			errorf("aspect takes no view")
		}
		args.noSafe(name)
		args.noMultiplier(name)
		ratio := args.number(1)
		c, err := p.AspectRatio(ratio, args.opts)
		emit(state, []Constraint{c}, err)
	case "heightratio":
		if args.to != nil {
			errorf("heightratio takes no view")
		}
		args.noSafe(name)
		args.noMultiplier(name)
		ratio := args.number(1)
		c, err := p.HeightToWidth(ratio, args.opts)
		emit(state, []Constraint{c}, err)
	case "centerx":
		args.noAxisOptions(name)
		c, err := p.Axis(CenterX, args.target(), args.constant())
		emit(state, []Constraint{c}, err)
	case "centery":
		args.noAxisOptions(name)
		c, err := p.Axis(CenterY, args.target(), args.constant())
		emit(state, []Constraint{c}, err)
	case "center":
		args.noAxisOptions(name)
		res, err := p.Axes(AllAxes, args.target(), args.constant())
		emit(state, res.Constraints(), err)
	case "centerat":
		to := args.target()
		args.noAxisOptions(name)
		args.noRelation(name)
		if len(args.names) > 0 {
			errorf("unexpected argument %q", args.names[0])
		}
		if len(args.numbers) != 2 {
			errorf("centerat takes an x and a y coordinate")
		}
		pt := f32.Pt(args.numbers[0], args.numbers[1])
		res, err := p.CenterAt(pt, to, args.opts.Priority)
		// CenterAt creates the vertical constraint first.
		emit(state, compact(res.CenterY, res.CenterX), err)
	default:
		errorf("invalid call %q", name)
	}
	expect(state, ")")
}

func formatEdge(state *formatState, e Edge, args formatArgs) {
	p := state.pin
	to := args.target()
	o := args.constant()
	args.noMultiplier(e.String())
	var c Constraint
	var err error
	switch args.attr {
	case "":
		c, err = p.Edge(e, to, o)
	case "center":
		args.noSafe(e.String() + "(_.center)")
		switch e {
		case Top, Bottom:
			c, err = p.YEdgeToCenter(yEdge(e), to, o)
		default:
			c, err = p.XEdgeToCenter(xEdge(e), to, o)
		}
	default:
		other, ok := edgeFor(args.attr)
		if !ok {
			errorf("invalid edge %q", args.attr)
		}
		switch {
		case isVertical(e) && isVertical(other):
			c, err = p.YEdge(yEdge(e), yEdge(other), to, o)
		case !isVertical(e) && !isVertical(other):
			c, err = p.XEdge(xEdge(e), xEdge(other), to, o)
		default:
			errorf("cannot pin %s to %s", e, other)
		}
	}
	emit(state, []Constraint{c}, err)
}

func formatDimension(state *formatState, d Dimension, args formatArgs) {
	p := state.pin
	o := args.constant()
	args.noSafe(d.String())
	var c Constraint
	var err error
	switch {
	case args.to == nil:
		if len(args.numbers) == 0 {
			errorf("%s needs a view or a constant", d)
		}
		args.noMultiplier(d.String())
		c, err = p.Dimension(d, o)
	case args.attr == "":
		c, err = p.DimensionTo(d, args.to, o)
	default:
		other, ok := dimensionFor(args.attr)
		if !ok {
			errorf("invalid dimension %q", args.attr)
		}
		c, err = p.DimensionToOther(d, other, args.to, o)
	}
	emit(state, []Constraint{c}, err)
}

func formatAt(state *formatState) {
	name := parseName(state)
	e, ok := edgeFor(name)
	if !ok {
		errorf("invalid edge %q", name)
	}
	expect(state, ",")
	args := parseArgs(state)
	args.noAxisOptions("at")
	args.noRelation("at")
	pos := args.number(0)
	c, err := state.pin.EdgeAt(e, args.target(), pos, args.opts.Priority)
	emit(state, []Constraint{c}, err)
}

func emit(state *formatState, cs []Constraint, err error) {
	for _, c := range cs {
		if c != nil {
			state.out = append(state.out, c)
		}
	}
	if err != nil {
		panic(activateError{err})
	}
}

func parseArgs(state *formatState) formatArgs {
	var args formatArgs
	for {
		switch c := peek(state); {
		case c == ')':
			return args
		case c == '_':
			if args.to != nil {
				errorf("more than one view")
			}
			args.to = parseView(state)
			if peek(state) == '.' {
				expect(state, ".")
				args.attr = parseName(state)
			}
		case c == '*':
			expect(state, "*")
			args.opts.Multiplier = parseFloat(state)
		case c == '@':
			expect(state, "@")
			args.opts.Priority = Priority(parseFloat(state))
		case c == '=' || c == '>' || c == '<':
			args.opts.Relation = parseRelation(state)
		case c == '-' || c == '.' || ('0' <= c && c <= '9'):
			args.numbers = append(args.numbers, parseFloat(state))
		default:
			name := parseName(state)
			if name == "" {
				errorf("unexpected %q", c)
			}
			if name == "safe" {
				args.opts.Safe = true
			} else {
				args.names = append(args.names, name)
			}
		}
		if peek(state) == ',' {
			expect(state, ",")
		}
	}
}

func (a formatArgs) target() View {
	if a.to == nil {
		errorf("missing view")
	}
	return a.to
}

// constant returns the options with the constant argument, if any.
func (a formatArgs) constant() Options {
	o := a.opts
	o.Constant = a.number(0)
	return o
}

func (a formatArgs) noAttr(call string) {
	if a.attr != "" {
		errorf("%s takes no attribute, got %q", call, a.attr)
	}
}

func (a formatArgs) noSafe(call string) {
	if a.opts.Safe {
		errorf("%s has no safe variant", call)
	}
}

func (a formatArgs) noMultiplier(call string) {
	if a.opts.Multiplier != 0 {
		errorf("%s takes no multiplier", call)
	}
}

func (a formatArgs) noRelation(call string) {
	if a.opts.Relation != Equal {
		errorf("%s takes no relation", call)
	}
}

// noAxisOptions rejects the arguments center lines have no use for.
func (a formatArgs) noAxisOptions(call string) {
	a.noAttr(call)
	a.noSafe(call)
	a.noMultiplier(call)
}

func (a formatArgs) number(def float32) float32 {
	if len(a.names) > 0 {
		errorf("unexpected argument %q", a.names[0])
	}
	switch len(a.numbers) {
	case 0:
		return def
	case 1:
		return a.numbers[0]
	default:
		errorf("too many numbers")
		return 0
	}
}

func parseView(state *formatState) View {
	expect(state, "_")
	if i, max := state.current, len(state.views)-1; i > max {
		errorf("view index %d out of bounds [0;%d]", i, max)
	}
	v := state.views[state.current]
	state.current++
	return v
}

func parseRelation(state *formatState) Relation {
	skipWhitespace(state)
	if len(state.expr) < 2 {
		errorf("unexpected end")
	}
	var r Relation
	switch state.expr[:2] {
	case "==":
		r = Equal
	case ">=":
		r = GreaterOrEqual
	case "<=":
		r = LessOrEqual
	default:
		errorf("invalid relation %q", state.expr[:2])
	}
	state.expr = state.expr[2:]
	return r
}

func parseName(state *formatState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ',' || c == ')' || c == '.' || c == ' ':
			name := state.expr[:i]
			state.expr = state.expr[i:]
			return name
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("unexpected end")
	return ""
}

func parseFloat(state *formatState) float32 {
	skipWhitespace(state)
	i := 0
	if i < len(state.expr) && state.expr[i] == '-' {
		i++
	}
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 32)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return float32(v)
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 {
		switch state.expr[0] {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			state.expr = state.expr[1:]
		default:
			return
		}
	}
}

func edgeFor(name string) (Edge, bool) {
	for _, e := range edges {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}

func dimensionFor(name string) (Dimension, bool) {
	for _, d := range dimensions {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

func isVertical(e Edge) bool {
	return e == Top || e == Bottom
}

func xEdge(e Edge) XEdge {
	if e == Right {
		return XRight
	}
	return XLeft
}

func yEdge(e Edge) YEdge {
	if e == Bottom {
		return YBottom
	}
	return YTop
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("layout: format %s:%d: %s", e.Format, e.Pos, e.Msg)
}
