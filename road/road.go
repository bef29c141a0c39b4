package road

// Fixed road dimensions shared by every approach.
const (
	LaneWidth   = 50  // Width of a single lane in units
	VehicleSize = 50  // Vehicles are LaneWidth x LaneWidth squares
	LightSize   = 50  // Lights are drawn as squares of this size
	StopOffset  = 10  // Distance of the stop line before the intersection boundary
	ExitMargin  = 100 // Vehicles further than this outside the canvas are retired

	DefaultWidth  = 900
	DefaultHeight = 700

	lightSetback = 100
)

// Geometry describes the canvas and the single intersection at its centre.
// It is immutable configuration supplied once at startup.
type Geometry struct {
	Width   int // Canvas width
	Height  int // Canvas height
	CenterX int // Intersection midpoint X (the vertical road's centre line)
	CenterY int // Intersection midpoint Y (the horizontal road's centre line)
}

// Default returns the 900x700 canvas used by the simulation.
func Default() Geometry {
	return New(DefaultWidth, DefaultHeight)
}

// New creates a geometry for a canvas of the given size with the
// intersection at its centre.
func New(width, height int) Geometry {
	return Geometry{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Entry returns the spawn coordinates of the lane a vehicle travelling in
// direction d enters from.
func (g Geometry) Entry(d Direction) (x, y int) {
	switch d {
	case North:
		return g.CenterX - LaneWidth, 0
	case South:
		return g.CenterX, g.Height - VehicleSize
	case East:
		return 0, g.CenterY
	case West:
		return g.Width - VehicleSize, g.CenterY - LaneWidth
	}
	return 0, 0
}

// Lane returns the lane coordinate for direction d: the fixed y of the
// horizontal lanes or the fixed x of the vertical lanes.
func (g Geometry) Lane(d Direction) int {
	x, y := g.Entry(d)
	if d.Horizontal() {
		return y
	}
	return x
}

// IntersectionBox is the square where the two roads cross.
func (g Geometry) IntersectionBox() Rect {
	return NewRect(g.CenterX-LaneWidth, g.CenterY-LaneWidth, 2*LaneWidth, 2*LaneWidth)
}

// CenterRegion is the area that must be empty before right-of-way can
// change. It includes the strip between each stop line and the
// intersection, so a vehicle that has crossed its stop line counts as inside.
func (g Geometry) CenterRegion() Rect {
	return g.IntersectionBox().Grow(StopOffset)
}

// StopLine returns the coordinate on d's travel axis that a vehicle's
// leading edge may not pass without a green light.
func (g Geometry) StopLine(d Direction) int {
	box := g.IntersectionBox()
	switch d {
	case North:
		return box.Y - StopOffset
	case South:
		return box.Bottom() + StopOffset
	case East:
		return box.X - StopOffset
	case West:
		return box.Right() + StopOffset
	}
	return 0
}

// LightPosition returns where the light controlling direction d is drawn.
func (g Geometry) LightPosition(d Direction) (x, y int) {
	near := -lightSetback
	far := LaneWidth
	switch d {
	case North:
		return g.CenterX + near, g.CenterY + near
	case East:
		return g.CenterX + near, g.CenterY + far
	case West:
		return g.CenterX + far, g.CenterY + near
	case South:
		return g.CenterX + far, g.CenterY + far
	}
	return 0, 0
}

// OffCanvas reports whether a vehicle at (x, y) is further than ExitMargin
// outside the canvas on either axis.
func (g Geometry) OffCanvas(x, y int) bool {
	return x < -ExitMargin || x > g.Width+ExitMargin ||
		y < -ExitMargin || y > g.Height+ExitMargin
}
