package game

import (
	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/lanecontroller"
)

// Tick advances the simulation by one step. Scheduled spawns run first and
// lights are re-evaluated next. Then every vehicle decides against a
// snapshot taken before anything moves, and all decisions are applied. The
// outcome does not depend on registry order.
func (s *Simulation) Tick() {
	s.runScheduled()

	if s.lights.Update(s.tick, s.capacity, s.vehicles) {
		s.stats.LightSwitches++
		green, _ := s.lights.Green()
		s.log.Printf("tick %d: %s green (queued %d)", s.tick, green, s.capacity.Get(green))
	}

	snapshot := s.Vehicles()
	steps := s.decide(snapshot)

	for i := range s.vehicles {
		v := &s.vehicles[i]
		tr := v.Apply(s.geometry, steps[i])
		if tr.Committed {
			s.capacity.Decrement(v.Origin)
			s.stats.Committed++
			s.log.Printf("tick %d: %s committed", s.tick, v)
		}
		if tr.Exited {
			s.stats.Exited++
		}
	}

	s.compact()
	s.tick++
}

// decide computes every vehicle's step from the frozen snapshot.
func (s *Simulation) decide(snapshot []car.Vehicle) []car.Step {
	steps := make([]car.Step, len(snapshot))
	for i, v := range snapshot {
		if !v.Active {
			continue
		}
		green := s.lights.IsGreen(v.Direction)
		clear := v.Committed || lanecontroller.CanMove(v, snapshot)
		steps[i] = v.Decide(s.geometry, green, clear)
	}
	return steps
}

// compact drops retired vehicles from the registry. IDs come from a
// separate counter, so removal never causes reuse.
func (s *Simulation) compact() {
	kept := s.vehicles[:0]
	for _, v := range s.vehicles {
		if v.Active {
			kept = append(kept, v)
		}
	}
	for i := len(kept); i < len(s.vehicles); i++ {
		s.vehicles[i] = car.Vehicle{}
	}
	s.vehicles = kept
}

// Run advances n ticks.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}
