package game

import (
	"fmt"

	"github.com/golangdaddy/crossroads/road"
)

// Command is a discrete input from the host frontend.
type Command int

const (
	SpawnNorth Command = iota
	SpawnSouth
	SpawnEast
	SpawnWest
	SpawnRandom
	Quit
)

// Direction returns the heading a directed spawn command creates.
func (c Command) Direction() (road.Direction, bool) {
	switch c {
	case SpawnNorth:
		return road.North, true
	case SpawnSouth:
		return road.South, true
	case SpawnEast:
		return road.East, true
	case SpawnWest:
		return road.West, true
	}
	return 0, false
}

func (c Command) String() string {
	switch c {
	case SpawnNorth:
		return "spawn-north"
	case SpawnSouth:
		return "spawn-south"
	case SpawnEast:
		return "spawn-east"
	case SpawnWest:
		return "spawn-west"
	case SpawnRandom:
		return "spawn-random"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Apply executes a command. It returns true when the command asks the
// host to stop the simulation.
func (s *Simulation) Apply(cmd Command) bool {
	if dir, ok := cmd.Direction(); ok {
		s.Spawn(dir)
		return false
	}

	switch cmd {
	case SpawnRandom:
		s.SpawnRandom()
	case Quit:
		return true
	default:
		s.log.Printf("ignoring unknown command %s", cmd)
	}
	return false
}
