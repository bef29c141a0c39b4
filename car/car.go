package car

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/crossroads/road"
)

// Speed is the fixed distance a moving vehicle covers per tick.
const Speed = 2

// Route is the manoeuvre a vehicle performs at the intersection.
type Route int

const (
	Straight Route = iota
	Left
	Right
)

// Routes lists every route in spawn-draw order.
var Routes = [...]Route{Left, Right, Straight}

func (r Route) String() string {
	switch r {
	case Straight:
		return "Straight"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Route(%d)", int(r))
}

// Color returns the paint used for vehicles spawned with route r.
func (r Route) Color() color.RGBA {
	switch r {
	case Left:
		return color.RGBA{0, 255, 128, 255}
	case Right:
		return color.RGBA{255, 165, 0, 255}
	}
	return color.RGBA{0, 191, 255, 255}
}

// Vehicle is a single car in the simulation registry.
type Vehicle struct {
	ID        int            // Arrival order; lower IDs have right of way in a lane
	X, Y      int            // Top-left corner of the bounding box
	Direction road.Direction // Current heading
	Origin    road.Direction // Approach the vehicle spawned on
	Route     Route          // Pending manoeuvre, Straight once turned
	Speed     int            // Units per tick
	Active    bool           // False once the vehicle has left the canvas
	Committed bool           // True once past the stop line
	Color     color.RGBA     // Fixed at spawn from the initial route
}

// New creates an active, uncommitted vehicle.
func New(id, x, y int, dir road.Direction, route Route) Vehicle {
	return Vehicle{
		ID:        id,
		X:         x,
		Y:         y,
		Direction: dir,
		Origin:    dir,
		Route:     route,
		Speed:     Speed,
		Active:    true,
		Color:     route.Color(),
	}
}

// Rect returns the vehicle's bounding box.
func (v Vehicle) Rect() road.Rect {
	return road.VehicleRect(v.X, v.Y)
}

// Lane returns the coordinate identifying the vehicle's lane: y for
// horizontal headings, x for vertical ones.
func (v Vehicle) Lane() int {
	if v.Direction.Horizontal() {
		return v.Y
	}
	return v.X
}

// Along returns the vehicle's position on its travel axis.
func (v Vehicle) Along() int {
	if v.Direction.Horizontal() {
		return v.X
	}
	return v.Y
}

// LeadingEdge returns the coordinate of the front of the vehicle on its
// travel axis.
func (v Vehicle) LeadingEdge() int {
	if v.Direction.Sign() > 0 {
		return v.Along() + road.VehicleSize
	}
	return v.Along()
}

// PastStopLine reports whether the leading edge has crossed the stop line
// of the vehicle's current heading.
func (v Vehicle) PastStopLine(g road.Geometry) bool {
	return v.Direction.Sign()*(v.LeadingEdge()-g.StopLine(v.Direction)) > 0
}

// WouldCrossStopLine reports whether one more step carries the leading edge
// past the stop line.
func (v Vehicle) WouldCrossStopLine(g road.Geometry) bool {
	return v.Direction.Sign()*(v.LeadingEdge()-g.StopLine(v.Direction))+v.Speed > 0
}

func (v Vehicle) String() string {
	return fmt.Sprintf("car#%d(%s %s @%d,%d)", v.ID, v.Direction, v.Route, v.X, v.Y)
}
