package layout

// ConstraintKind discriminates the per-axis size policies
type ConstraintKind uint8

const (
	// No constraint imposed, the child view's response is used
	Free ConstraintKind = iota
	// Takes all available space, no matter what the child needs
	Full
	// Always claims exactly the included size
	Fixed
	// Claims at most the included size
	AtMost
	// Claims at least the included size
	AtLeast
)

// Constraint is a single-axis size policy for a wrapped view. It is
// applied on both sides of the child's own negotiation: Available before
// delegating, Result after.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// FreeC returns the pass-through constraint
func FreeC() Constraint { return Constraint{Kind: Free} }

// FullC returns the greedy fill constraint
func FullC() Constraint { return Constraint{Kind: Full} }

// FixedC returns a fixed-size constraint
func FixedC(v int) Constraint { return Constraint{Kind: Fixed, Value: v} }

// AtMostC returns an upper-bound constraint
func AtMostC(v int) Constraint { return Constraint{Kind: AtMost, Value: v} }

// AtLeastC returns a lower-bound constraint
func AtLeastC(v int) Constraint { return Constraint{Kind: AtLeast, Value: v} }

// Available returns the space to offer the child when available is
// offered to the wrapping view
func (c Constraint) Available(available int) int {
	switch c.Kind {
	case Fixed, AtMost:
		// Never offer more than physically available, even if the
		// nominal constraint is larger.
		return min(c.Value, available)
	default: // Free, Full, AtLeast
		return available
	}
}

// Result returns the size the wrapping view claims, given the child's
// response and the space that was available
func (c Constraint) Result(result, available int) int {
	switch {
	case c.Kind == AtLeast && result < c.Value:
		return c.Value
	case c.Kind == AtMost && result > c.Value:
		return c.Value
	case c.Kind == Fixed:
		return c.Value
	case c.Kind == Full && available > result:
		// Note the asymmetry: when the child answers larger than the
		// available space, the answer is passed through unchanged.
		return available
	default:
		return result
	}
}
