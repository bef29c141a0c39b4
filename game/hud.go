package game

import (
	"fmt"
	"strings"

	"github.com/golangdaddy/crossroads/road"
)

// KeyHelp describes the key bindings shared by every frontend.
const KeyHelp = "Arrows: spawn  R: random  Esc: quit"

// StatusLines returns the HUD text: the green direction and tick, the
// queued vehicles per approach and the session totals.
func (s *Simulation) StatusLines() []string {
	green := "none"
	if d, ok := s.Green(); ok {
		green = d.String()
	}

	queues := make([]string, 0, road.DirectionCount)
	for _, d := range road.Priority {
		queues = append(queues, fmt.Sprintf("%s %d", d, s.capacity.Get(d)))
	}

	st := s.stats
	return []string{
		fmt.Sprintf("Tick %d  Green: %s", s.tick, green),
		"Waiting: " + strings.Join(queues, "  "),
		fmt.Sprintf("Spawned %d  Rejected %d  Crossed %d  Exited %d  Switches %d",
			st.Spawned, st.Rejected, st.Committed, st.Exited, st.LightSwitches),
	}
}
