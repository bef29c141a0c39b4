package road

// Rect is an axis-aligned box in canvas units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// VehicleRect is the bounding box of a vehicle whose top-left corner is (x, y).
func VehicleRect(x, y int) Rect {
	return NewRect(x, y, VehicleSize, VehicleSize)
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap. Rectangles that
// only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Grow returns r extended by n units on every side.
func (r Rect) Grow(n int) Rect {
	return NewRect(r.X-n, r.Y-n, r.W+2*n, r.H+2*n)
}
