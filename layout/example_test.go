// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"os"

	"gioui.org/autolayout/f32"
	"gioui.org/autolayout/internal/record"
	"gioui.org/autolayout/layout"
)

func ExamplePin_Edges() {
	eng := new(record.Engine)
	root := record.NewView("root", nil, f32.Rect(0, 0, 375, 812))
	card := record.NewView("card", root, f32.Rectangle{})

	p := layout.Pin{Engine: eng, View: card}
	edges, err := p.Edges(layout.HorizontalEdges, root, layout.Options{Constant: 16, Safe: true})
	if err != nil {
		panic(err)
	}
	fmt.Println(edges.Top == nil, edges.Left != nil, edges.Right != nil)
	eng.WriteTo(os.Stdout)

	// Output:
	// true true true
	// card.left == root.safe.left + 16 @1000
	// card.right == root.safe.right - 16 @1000
}

func ExamplePin_DimensionTo() {
	eng := new(record.Engine)
	root := record.NewView("root", nil, f32.Rect(0, 0, 375, 812))
	image := record.NewView("image", root, f32.Rectangle{})

	p := layout.Pin{Engine: eng, View: image}
	c, err := p.DimensionTo(layout.Width, root, layout.Options{Multiplier: 0.5, Constant: 10})
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Equation())

	// Output:
	// image.width == root.width*0.5 + 10
}

func ExamplePin_CenterAt() {
	eng := new(record.Engine)
	root := record.NewView("root", nil, f32.Rect(0, 0, 300, 200))
	dot := record.NewView("dot", root, f32.Rectangle{})

	p := layout.Pin{Engine: eng, View: dot}
	if _, err := p.CenterAt(f32.Pt(200, 50), root, layout.High); err != nil {
		panic(err)
	}
	eng.WriteTo(os.Stdout)

	// Output:
	// dot.centerY == root.centerY - 50 @750
	// dot.centerX == root.centerX + 50 @750
}

func ExampleFormat() {
	eng := new(record.Engine)
	root := record.NewView("root", nil, f32.Rect(0, 0, 375, 812))
	bar := record.NewView("bar", root, f32.Rectangle{})

	p := layout.Pin{Engine: eng, View: bar}
	if _, err := layout.Format(p, "hedges(_) top(_, safe) height(44)", root, root); err != nil {
		panic(err)
	}
	eng.WriteTo(os.Stdout)

	// Output:
	// bar.left == root.left @1000
	// bar.right == root.right @1000
	// bar.top == root.safe.top @1000
	// bar.height == 44 @1000
}
