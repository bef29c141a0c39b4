package road

import "fmt"

// Direction is the heading of a vehicle on the canvas. Canvas y grows
// downward: North-bound vehicles advance along +y, South-bound along -y.
type Direction int

const (
	North Direction = iota
	East
	West
	South
)

// DirectionCount is the size of the closed direction set.
const DirectionCount = 4

// Priority lists every direction in right-of-way tie-break order.
var Priority = [DirectionCount]Direction{North, East, West, South}

// Valid reports whether d is one of the four approach directions.
func (d Direction) Valid() bool {
	return d >= North && d <= South
}

// Horizontal reports whether d travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// Sign is +1 for directions that advance toward larger coordinates and -1
// otherwise.
func (d Direction) Sign() int {
	if d == East || d == North {
		return 1
	}
	return -1
}

// Delta returns the per-tick displacement of a vehicle moving at speed.
func (d Direction) Delta(speed int) (dx, dy int) {
	if d.Horizontal() {
		return d.Sign() * speed, 0
	}
	return 0, d.Sign() * speed
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case West:
		return "West"
	case South:
		return "South"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
