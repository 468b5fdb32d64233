package geom

// Vec represents a 2D size or position in terminal cells
type Vec struct {
	X, Y int
}

// V is shorthand for constructing a Vec
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns component-wise sum
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns component-wise difference, clamped at zero
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: max(v.X-o.X, 0), Y: max(v.Y-o.Y, 0)}
}

// Min returns component-wise minimum
func (v Vec) Min(o Vec) Vec {
	return Vec{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns component-wise maximum
func (v Vec) Max(o Vec) Vec {
	return Vec{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Fits returns true if v fits inside o on both axes
func (v Vec) Fits(o Vec) bool {
	return v.X <= o.X && v.Y <= o.Y
}

// IsZero returns true if both components are zero
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
