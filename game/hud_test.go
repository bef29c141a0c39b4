package game

import (
	"testing"

	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/road"
)

func TestStatusLines(t *testing.T) {
	sim := newTestSimulation(1)
	lines := sim.StatusLines()
	if lines[0] != "Tick 0  Green: none" {
		t.Errorf("Unexpected first line %q", lines[0])
	}

	sim.SpawnRoute(road.West, car.Right)
	sim.SpawnRoute(road.West, car.Right) // rejected, entry occupied
	sim.Tick()

	lines = sim.StatusLines()
	want := []string{
		"Tick 1  Green: West",
		"Waiting: North 0  East 0  West 1  South 0",
		"Spawned 1  Rejected 1  Crossed 0  Exited 0  Switches 1",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
