package car

import "github.com/golangdaddy/crossroads/road"

// Step is the outcome of a vehicle's per-tick decision.
type Step struct {
	Commit bool // Vehicle passes its commit checkpoint this tick
	Move   bool // Vehicle advances one step this tick
}

// Transition reports the state changes Apply made.
type Transition struct {
	Committed bool // Committed flipped false -> true
	Turned    bool
	Exited    bool // Active flipped true -> false
}

// Decide evaluates the gates for one tick. green is whether the light for
// the vehicle's heading is green and clear is the in-lane following gate,
// both computed against the tick's snapshot. Committed vehicles ignore both.
func (v Vehicle) Decide(g road.Geometry, green, clear bool) Step {
	if !v.Active {
		return Step{}
	}

	step := Step{Commit: !v.Committed && v.PastStopLine(g)}
	if v.Committed || step.Commit {
		step.Move = true
		return step
	}

	// Queued: red holds the vehicle at its stop line, a close leader holds it anywhere.
	step.Move = clear && (green || !v.WouldCrossStopLine(g))
	return step
}

// Apply executes a decided step: commit, displacement, turn and exit check.
func (v *Vehicle) Apply(g road.Geometry, step Step) Transition {
	var tr Transition
	if !v.Active {
		return tr
	}

	if step.Commit && !v.Committed {
		v.Committed = true
		tr.Committed = true
	}

	if step.Move {
		dx, dy := v.Direction.Delta(v.Speed)
		v.X += dx
		v.Y += dy
		tr.Turned = v.turn(g)
	}

	if g.OffCanvas(v.X, v.Y) {
		v.Active = false
		tr.Exited = true
	}
	return tr
}

// turn changes heading once the vehicle reaches its turning point. Left
// turns happen at the far lane of the crossing road, right turns one lane
// earlier. The crossed coordinate snaps to the new lane.
func (v *Vehicle) turn(g road.Geometry) bool {
	if v.Route == Straight {
		return false
	}

	cx, cy := g.CenterX, g.CenterY
	near := road.LaneWidth

	switch v.Direction {
	case road.East:
		if v.Route == Left && v.X >= cx {
			v.X = cx
			return v.redirect(road.South)
		}
		if v.Route == Right && v.X >= cx-near {
			v.X = cx - near
			return v.redirect(road.North)
		}
	case road.West:
		if v.Route == Left && v.X <= cx-near {
			v.X = cx - near
			return v.redirect(road.North)
		}
		if v.Route == Right && v.X <= cx {
			v.X = cx
			return v.redirect(road.South)
		}
	case road.North:
		if v.Route == Left && v.Y >= cy {
			v.Y = cy
			return v.redirect(road.East)
		}
		if v.Route == Right && v.Y >= cy-near {
			v.Y = cy - near
			return v.redirect(road.West)
		}
	case road.South:
		if v.Route == Left && v.Y <= cy-near {
			v.Y = cy - near
			return v.redirect(road.West)
		}
		if v.Route == Right && v.Y <= cy {
			v.Y = cy
			return v.redirect(road.East)
		}
	}
	return false
}

func (v *Vehicle) redirect(d road.Direction) bool {
	v.Direction = d
	v.Route = Straight
	return true
}
