package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/road"
)

// ScriptEntry is one scheduled spawn. A directed spawn may pin its route;
// otherwise the route is drawn at random like a key press.
type ScriptEntry struct {
	Tick    int
	Command Command
	Route   car.Route
	Routed  bool // Route was given explicitly
}

// LoadScript reads a traffic script from a file.
func LoadScript(filename string) ([]ScriptEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script file: %w", err)
	}
	defer file.Close()

	return ParseScript(file)
}

// ParseScript reads one spawn per line in the form
//
//	<tick> <north|south|east|west> [left|right|straight]
//	<tick> random
//
// Blank lines and lines starting with '#' are skipped.
func ParseScript(r io.Reader) ([]ScriptEntry, error) {
	var entries []ScriptEntry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseScriptLine(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", lineNo, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	return entries, nil
}

func parseScriptLine(fields []string) (ScriptEntry, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return ScriptEntry{}, fmt.Errorf("expected <tick> <direction> [route], got %d fields", len(fields))
	}

	tick, err := strconv.Atoi(fields[0])
	if err != nil {
		return ScriptEntry{}, fmt.Errorf("invalid tick %q: %w", fields[0], err)
	}
	if tick < 0 {
		return ScriptEntry{}, fmt.Errorf("negative tick %d", tick)
	}
	entry := ScriptEntry{Tick: tick}

	if strings.EqualFold(fields[1], "random") {
		if len(fields) == 3 {
			return ScriptEntry{}, fmt.Errorf("random spawns take no route")
		}
		entry.Command = SpawnRandom
		return entry, nil
	}

	dir, ok := lookupDirection(fields[1])
	if !ok {
		return ScriptEntry{}, fmt.Errorf("unknown direction %q", fields[1])
	}
	entry.Command = spawnCommand(dir)

	if len(fields) == 3 {
		route, ok := lookupRoute(fields[2])
		if !ok {
			return ScriptEntry{}, fmt.Errorf("unknown route %q", fields[2])
		}
		entry.Route = route
		entry.Routed = true
	}
	return entry, nil
}

func lookupDirection(name string) (road.Direction, bool) {
	for _, d := range road.Priority {
		if strings.EqualFold(d.String(), name) {
			return d, true
		}
	}
	return 0, false
}

func lookupRoute(name string) (car.Route, bool) {
	for _, r := range car.Routes {
		if strings.EqualFold(r.String(), name) {
			return r, true
		}
	}
	return 0, false
}

func spawnCommand(d road.Direction) Command {
	switch d {
	case road.North:
		return SpawnNorth
	case road.South:
		return SpawnSouth
	case road.East:
		return SpawnEast
	}
	return SpawnWest
}

// Schedule queues script entries. Each runs at the start of the tick it
// names, before the lights are evaluated; entries for ticks already run
// fire on the next tick.
func (s *Simulation) Schedule(entries []ScriptEntry) {
	s.pending = append(s.pending, entries...)
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].Tick < s.pending[j].Tick
	})
}

// Pending returns the number of scheduled entries not yet run.
func (s *Simulation) Pending() int {
	return len(s.pending)
}

func (s *Simulation) runScheduled() {
	n := 0
	for n < len(s.pending) && s.pending[n].Tick <= s.tick {
		e := s.pending[n]
		if dir, ok := e.Command.Direction(); ok && e.Routed {
			s.SpawnRoute(dir, e.Route)
		} else {
			s.Apply(e.Command)
		}
		n++
	}
	s.pending = s.pending[n:]
}
