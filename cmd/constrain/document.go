// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"gioui.org/autolayout/f32"
	"gioui.org/autolayout/internal/record"
	"gioui.org/autolayout/layout"
)

// document is the YAML form of a layout:
//
//	views:
//	  - name: root
//	    frame: [0, 0, 375, 812]
//	  - name: header
//	    parent: root
//	    layout: hedges(_) top(_, safe) height(44)
//	    targets: [root, root]
//
// Targets bind, in order, the underscores of the layout string.
type document struct {
	Views []viewDoc `yaml:"views"`
}

type viewDoc struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
	// Frame is x, y, width and height in parent coordinates.
	Frame   []float32 `yaml:"frame,omitempty"`
	Layout  string    `yaml:"layout,omitempty"`
	Targets []string  `yaml:"targets,omitempty"`
}

// tree is a built document.
type tree struct {
	engine *record.Engine
	views  []*record.View
}

func loadDocument(r io.Reader) (*document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	doc := new(document)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *document) validate() error {
	declared := make(map[string]bool)
	for i, v := range d.Views {
		switch {
		case v.Name == "":
			return fmt.Errorf("view %d: missing name", i)
		case declared[v.Name]:
			return fmt.Errorf("view %q: declared twice", v.Name)
		case v.Parent != "" && !declared[v.Parent]:
			return fmt.Errorf("view %q: parent %q is not declared before it", v.Name, v.Parent)
		case len(v.Frame) != 0 && len(v.Frame) != 4:
			return fmt.Errorf("view %q: frame needs x, y, width and height", v.Name)
		}
		declared[v.Name] = true
	}
	for _, v := range d.Views {
		for _, t := range v.Targets {
			if !declared[t] {
				return fmt.Errorf("view %q: unknown target %q", v.Name, t)
			}
		}
	}
	return nil
}

// build creates the views of d and issues their layouts. The errors
// of all failing layouts are joined.
func (d *document) build(log *zerolog.Logger) (*tree, error) {
	t := &tree{engine: new(record.Engine)}
	byName := make(map[string]*record.View)
	for _, vd := range d.Views {
		var frame f32.Rectangle
		if len(vd.Frame) == 4 {
			x, y := vd.Frame[0], vd.Frame[1]
			frame = f32.Rect(x, y, x+vd.Frame[2], y+vd.Frame[3])
		}
		v := record.NewView(vd.Name, byName[vd.Parent], frame)
		byName[vd.Name] = v
		t.views = append(t.views, v)
	}
	var errs []error
	for _, vd := range d.Views {
		if strings.TrimSpace(vd.Layout) == "" {
			continue
		}
		var targets []layout.View
		for _, name := range vd.Targets {
			targets = append(targets, byName[name])
		}
		p := layout.Pin{Engine: t.engine, View: byName[vd.Name], Log: log}
		if _, err := layout.Format(p, vd.Layout, targets...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", vd.Name, err))
		}
	}
	return t, errors.Join(errs...)
}

const (
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// writeConstraints writes the active constraints of t, one per line.
func writeConstraints(w io.Writer, t *tree, color bool) {
	for _, c := range t.engine.Active() {
		eq := c.Equation()
		prio := "@" + c.Priority().String()
		if !color {
			fmt.Fprintf(w, "%v %s\n", eq, prio)
			continue
		}
		fmt.Fprintf(w, "%s%s%s %s%s%s\n", ansiCyan, eq, ansiReset, ansiDim, prio, ansiReset)
	}
}
