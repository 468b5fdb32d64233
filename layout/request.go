package layout

import (
	"github.com/lixenwraith/loom/geom"
)

// DimKind discriminates the per-axis request variants coming from the
// widget layer
type DimKind uint8

const (
	// The axis size is not constrained by the parent
	Unknown DimKind = iota
	// The axis must be exactly Value cells
	FixedDim
	// The axis may use at most Value cells
	AtMostDim
)

// Dim is a single-axis layout request
type Dim struct {
	Kind  DimKind
	Value int
}

// UnknownDim returns the unconstrained request
func UnknownDim() Dim { return Dim{Kind: Unknown} }

// FixedD returns an exact-size request
func FixedD(v int) Dim { return Dim{Kind: FixedDim, Value: v} }

// AtMostD returns an upper-bound request
func AtMostD(v int) Dim { return Dim{Kind: AtMostDim, Value: v} }

// Resolve converts the request into a concrete space to measure against,
// given a fallback maximum for the unconstrained case
func (d Dim) Resolve(maximum int) int {
	switch d.Kind {
	case FixedDim:
		return d.Value
	case AtMostDim:
		return min(d.Value, maximum)
	default:
		return maximum
	}
}

// Request is a bi-dimensional layout request from the widget layer
type Request struct {
	X, Y Dim
}

// Resolve converts the request into a concrete available size
func (r Request) Resolve(maximum geom.Vec) geom.Vec {
	return geom.Vec{X: r.X.Resolve(maximum.X), Y: r.Y.Resolve(maximum.Y)}
}
