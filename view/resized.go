package view

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/grid"
	"github.com/lixenwraith/loom/layout"
)

// ResizedView wraps a child view with independent per-axis size
// constraints. Each constraint is applied twice: once to shape the space
// offered to the child, once to reconcile the child's answer.
type ResizedView struct {
	child  View
	width  layout.Constraint
	height layout.Constraint
}

// NewResized wraps child with the given per-axis constraints
func NewResized(width, height layout.Constraint, child View) *ResizedView {
	return &ResizedView{child: child, width: width, height: height}
}

// FixedSize wraps child at exactly size cells
func FixedSize(size geom.Vec, child View) *ResizedView {
	return NewResized(layout.FixedC(size.X), layout.FixedC(size.Y), child)
}

// FixedWidth wraps child at exactly w cells wide
func FixedWidth(w int, child View) *ResizedView {
	return NewResized(layout.FixedC(w), layout.FreeC(), child)
}

// FixedHeight wraps child at exactly h cells tall
func FixedHeight(h int, child View) *ResizedView {
	return NewResized(layout.FreeC(), layout.FixedC(h), child)
}

// MaxWidth wraps child at no more than w cells wide
func MaxWidth(w int, child View) *ResizedView {
	return NewResized(layout.AtMostC(w), layout.FreeC(), child)
}

// MaxHeight wraps child at no more than h cells tall
func MaxHeight(h int, child View) *ResizedView {
	return NewResized(layout.FreeC(), layout.AtMostC(h), child)
}

// MinWidth wraps child at no less than w cells wide
func MinWidth(w int, child View) *ResizedView {
	return NewResized(layout.AtLeastC(w), layout.FreeC(), child)
}

// MinHeight wraps child at no less than h cells tall
func MinHeight(h int, child View) *ResizedView {
	return NewResized(layout.FreeC(), layout.AtLeastC(h), child)
}

// FullScreen wraps child to greedily fill all available space
func FullScreen(child View) *ResizedView {
	return NewResized(layout.FullC(), layout.FullC(), child)
}

// RequiredSize offers the constrained space to the child, then
// reconciles the child's answer against the constraints
func (v *ResizedView) RequiredSize(available geom.Vec) geom.Vec {
	// This is what the child will see as available.
	offered := geom.Vec{
		X: v.width.Available(available.X),
		Y: v.height.Available(available.Y),
	}

	// This is the size the child would like to have.
	child := v.child.RequiredSize(offered)

	// Some of this request will be granted, but maybe not all.
	return geom.Vec{
		X: v.width.Result(child.X, offered.X),
		Y: v.height.Result(child.Y, offered.Y),
	}
}

// Layout commits the constrained size to the child
func (v *ResizedView) Layout(size geom.Vec) {
	offered := geom.Vec{
		X: v.width.Available(size.X),
		Y: v.height.Available(size.Y),
	}
	v.child.Layout(offered.Min(size))
}

// Draw renders the child into the constrained sub-region
func (v *ResizedView) Draw(rg grid.Region) {
	size := geom.Vec{X: rg.Width(), Y: rg.Height()}
	inner := geom.Vec{
		X: v.width.Result(size.X, size.X),
		Y: v.height.Result(size.Y, size.Y),
	}.Min(size)
	v.child.Draw(rg.Sub(0, 0, inner.X, inner.Y))
}

// NeedsRelayout delegates to the child
func (v *ResizedView) NeedsRelayout() bool {
	return v.child.NeedsRelayout()
}
