// SPDX-License-Identifier: Unlicense OR MIT

package layout

// TopToBottom places View below to.
func (p Pin) TopToBottom(to View, o Options) (Constraint, error) {
	return p.YEdge(YTop, YBottom, to, o)
}

// BottomToTop places View above to.
func (p Pin) BottomToTop(to View, o Options) (Constraint, error) {
	return p.YEdge(YBottom, YTop, to, o)
}

// LeftToRight places View to the right of to.
func (p Pin) LeftToRight(to View, o Options) (Constraint, error) {
	return p.XEdge(XLeft, XRight, to, o)
}

// RightToLeft places View to the left of to.
func (p Pin) RightToLeft(to View, o Options) (Constraint, error) {
	return p.XEdge(XRight, XLeft, to, o)
}

// Size relates both the width and the height of View to o.Constant.
func (p Pin) Size(o Options) (Dimensions, error) {
	var r Dimensions
	for _, d := range AllDimensions.Members() {
		c, err := p.Dimension(d, o)
		if err != nil {
			return r, err
		}
		r.Set(d, c)
	}
	return r, nil
}

// SizeTo relates the width and height of View to those of to.
func (p Pin) SizeTo(to View, o Options) (Dimensions, error) {
	return p.Dimensions(AllDimensions, to, o)
}

// AspectRatio constrains the width of View to its own height times
// ratio, the width:height ratio. A zero ratio means 1.
func (p Pin) AspectRatio(ratio float32, o Options) (Constraint, error) {
	o.Multiplier = ratio
	return p.DimensionToOther(Width, Height, p.View, o)
}

// HeightToWidth constrains the height of View to its own width times
// ratio, the height:width ratio. A zero ratio means 1.
func (p Pin) HeightToWidth(ratio float32, o Options) (Constraint, error) {
	o.Multiplier = ratio
	return p.DimensionToOther(Height, Width, p.View, o)
}
