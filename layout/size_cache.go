// Package layout provides the per-axis size negotiation primitives:
// cached layout results, size constraints, and widget-layer requests.
package layout

import (
	"github.com/lixenwraith/loom/geom"
)

// SizeCache memorizes a one-axis layout result together with whether the
// measurement was constrained by the requested space. An unconstrained
// cache stays valid for any larger request.
type SizeCache struct {
	// Measured size along this axis
	Value int

	// True if the last measurement used all of the requested space; a
	// larger request could then produce a different result
	Constrained bool
}

// Accept returns true if the cached measurement remains valid for a new
// request along the same axis. A request smaller than the cached value
// always invalidates: a layout computed for more space must never be
// reused for less.
func (c SizeCache) Accept(request int) bool {
	switch {
	case request < c.Value:
		return false
	case request == c.Value:
		return true
	default:
		return !c.Constrained
	}
}

// CacheXY is a bi-dimensional size cache
type CacheXY struct {
	X, Y SizeCache
}

// Build creates a bi-dimensional cache from a measured size and the
// request it answered. Callers must guarantee size fits within req;
// per axis, Constrained = (size >= req).
func Build(size, req geom.Vec) CacheXY {
	return CacheXY{
		X: SizeCache{Value: size.X, Constrained: size.X >= req.X},
		Y: SizeCache{Value: size.Y, Constrained: size.Y >= req.Y},
	}
}

// Accept returns true if both axis caches remain valid for the request
func (c CacheXY) Accept(request geom.Vec) bool {
	return c.X.Accept(request.X) && c.Y.Accept(request.Y)
}

// Size returns the cached measurement
func (c CacheXY) Size() geom.Vec {
	return geom.Vec{X: c.X.Value, Y: c.Y.Value}
}
