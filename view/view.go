// Package view implements the two-pass size negotiation protocol between
// parent and child views, and the text container built on it.
//
// Pass one: the parent offers an available size and the child answers
// with RequiredSize. Pass two: the parent commits a final size with
// Layout, then the child draws into a region of that size.
package view

import (
	"github.com/lixenwraith/loom/geom"
	"github.com/lixenwraith/loom/grid"
)

// View is a node in the widget tree
type View interface {
	// RequiredSize answers how much space the view wants, given the
	// space available. May be called several times per layout pass and
	// must be non-destructive.
	RequiredSize(available geom.Vec) geom.Vec

	// Layout commits the final assigned size before drawing
	Layout(size geom.Vec)

	// Draw renders the view into the region
	Draw(rg grid.Region)

	// NeedsRelayout reports whether cached layout state was invalidated
	NeedsRelayout() bool
}
