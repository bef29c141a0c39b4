package lanecontroller

import (
	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/road"
)

// SafetyDistance is the minimum longitudinal gap between vehicles sharing
// a lane, measured between their positions on the travel axis.
const SafetyDistance = 70

// LaneKey identifies a lane by heading and lane coordinate.
type LaneKey struct {
	Direction road.Direction
	Coord     int
}

// KeyOf returns the lane a vehicle currently occupies.
func KeyOf(v car.Vehicle) LaneKey {
	return LaneKey{Direction: v.Direction, Coord: v.Lane()}
}

// keyAt returns the lane a vehicle at (x, y) heading d would occupy.
func keyAt(x, y int, d road.Direction) LaneKey {
	if d.Horizontal() {
		return LaneKey{Direction: d, Coord: y}
	}
	return LaneKey{Direction: d, Coord: x}
}

// along returns the position of (x, y) on d's travel axis.
func along(x, y int, d road.Direction) int {
	if d.Horizontal() {
		return x
	}
	return y
}

// SafetyZone is the rectangle extending SafetyDistance ahead of a vehicle
// at (x, y) heading d.
func SafetyZone(x, y int, d road.Direction) road.Rect {
	size := road.VehicleSize
	switch d {
	case road.East:
		return road.NewRect(x+size, y, SafetyDistance, size)
	case road.West:
		return road.NewRect(x-SafetyDistance, y, SafetyDistance, size)
	case road.North:
		return road.NewRect(x, y+size, size, SafetyDistance)
	case road.South:
		return road.NewRect(x, y-SafetyDistance, size, SafetyDistance)
	}
	return road.NewRect(x, y, 0, 0)
}

// IsPositionSafe decides whether a vehicle heading d may spawn at (x, y).
// It refuses when a vehicle in the same lane is closer than SafetyDistance
// in either direction, or when the candidate's box or safety zone overlaps
// any vehicle. Only active vehicles are considered.
func IsPositionSafe(x, y int, d road.Direction, others []car.Vehicle) bool {
	key := keyAt(x, y, d)
	pos := along(x, y, d)
	box := road.VehicleRect(x, y)
	zone := SafetyZone(x, y, d)

	for _, o := range others {
		if !o.Active {
			continue
		}
		if KeyOf(o) == key && abs(o.Along()-pos) < SafetyDistance {
			return false
		}
		r := o.Rect()
		if box.Intersects(r) || zone.Intersects(r) {
			return false
		}
	}
	return true
}

// CanMove reports whether self may advance one step. An earlier arrival
// (lower ID) ahead in the same lane holds self back whenever the step would
// leave less than SafetyDistance between them. Vehicles never overtake or
// tailgate their predecessors in a lane.
func CanMove(self car.Vehicle, others []car.Vehicle) bool {
	key := KeyOf(self)
	sign := self.Direction.Sign()

	for _, o := range others {
		if o.ID >= self.ID || !o.Active || KeyOf(o) != key {
			continue
		}
		gap := sign * (o.Along() - self.Along())
		if gap < 0 {
			continue // behind us
		}
		if gap-self.Speed < SafetyDistance {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
