package game

import (
	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/lanecontroller"
	"github.com/golangdaddy/crossroads/road"
)

// SpawnRoute creates a vehicle at the entry of dir's lane with the given
// route. It returns false without touching any state when the collision
// guard refuses the position; rejection is a normal outcome.
func (s *Simulation) SpawnRoute(dir road.Direction, route car.Route) (car.Vehicle, bool) {
	if !dir.Valid() {
		return car.Vehicle{}, false
	}

	x, y := s.geometry.Entry(dir)
	if !lanecontroller.IsPositionSafe(x, y, dir, s.vehicles) {
		s.stats.Rejected++
		s.log.Printf("spawn %s rejected: entry (%d, %d) not clear", dir, x, y)
		return car.Vehicle{}, false
	}

	s.created++
	v := car.New(s.created, x, y, dir, route)
	s.vehicles = append(s.vehicles, v)
	s.capacity.Increment(dir)
	s.stats.Spawned++
	s.log.Printf("spawned %s (queued %s: %d)", v, dir, s.capacity.Get(dir))
	return v, true
}

// Spawn creates a vehicle heading dir with a uniformly drawn route.
func (s *Simulation) Spawn(dir road.Direction) (car.Vehicle, bool) {
	return s.SpawnRoute(dir, s.randomRoute())
}

// SpawnRandom tries uniformly drawn directions until one is clear or the
// attempt budget runs out.
func (s *Simulation) SpawnRandom() (car.Vehicle, bool) {
	for i := 0; i < s.attempts; i++ {
		dir := road.Priority[s.rng.Intn(road.DirectionCount)]
		if v, ok := s.Spawn(dir); ok {
			return v, true
		}
	}
	s.log.Printf("random spawn gave up after %d attempts", s.attempts)
	return car.Vehicle{}, false
}

func (s *Simulation) randomRoute() car.Route {
	return car.Routes[s.rng.Intn(len(car.Routes))]
}
