package models

// Stats are running totals for a simulation session.
type Stats struct {
	Spawned       int `json:"spawned"`        // Vehicles created
	Rejected      int `json:"rejected"`       // Spawn attempts refused by the collision guard
	Committed     int `json:"committed"`      // Vehicles that passed their stop line
	Exited        int `json:"exited"`         // Vehicles retired off canvas
	LightSwitches int `json:"light_switches"` // Changes of the green direction
}

// InFlight returns the number of vehicles that are still on the canvas.
func (s Stats) InFlight() int {
	return s.Spawned - s.Exited
}
