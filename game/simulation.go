package game

import (
	"io"
	"log"
	"math/rand"

	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/models"
	"github.com/golangdaddy/crossroads/road"
	"github.com/golangdaddy/crossroads/trafficlight"
)

// DefaultSpawnAttempts bounds the directions SpawnRandom tries.
const DefaultSpawnAttempts = 4

// Options configure a new Simulation.
type Options struct {
	Geometry      road.Geometry
	EvaluateEvery int         // Light re-evaluation period in ticks
	SpawnAttempts int         // Retry budget for SpawnRandom
	Seed          int64       // Seeds route and direction draws
	Logger        *log.Logger // Optional; discards when nil
}

// Simulation owns every piece of mutable state: the vehicle registry, the
// capacity tracker and the light controller. It is driven by a single
// goroutine; nothing in it is safe for concurrent use.
type Simulation struct {
	geometry road.Geometry
	vehicles []car.Vehicle
	capacity models.Capacity
	lights   *trafficlight.Controller
	stats    models.Stats
	pending  []ScriptEntry

	tick     int
	created  int
	attempts int
	rng      *rand.Rand
	log      *log.Logger
}

// New creates an empty simulation.
func New(opts Options) *Simulation {
	g := opts.Geometry
	if g.Width == 0 || g.Height == 0 {
		g = road.Default()
	}
	attempts := opts.SpawnAttempts
	if attempts <= 0 {
		attempts = DefaultSpawnAttempts
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Simulation{
		geometry: g,
		vehicles: make([]car.Vehicle, 0, 64),
		lights:   trafficlight.NewController(g, opts.EvaluateEvery),
		attempts: attempts,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		log:      logger,
	}
}

// Geometry returns the fixed canvas geometry.
func (s *Simulation) Geometry() road.Geometry {
	return s.geometry
}

// Vehicles returns a copy of the registry.
func (s *Simulation) Vehicles() []car.Vehicle {
	out := make([]car.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Capacity returns a copy of the capacity tracker.
func (s *Simulation) Capacity() models.Capacity {
	return s.capacity
}

// Lights returns a copy of the four approach lights.
func (s *Simulation) Lights() []trafficlight.Light {
	return s.lights.Lights()
}

// Green returns the direction that currently has right of way.
func (s *Simulation) Green() (road.Direction, bool) {
	return s.lights.Green()
}

// Stats returns the session totals.
func (s *Simulation) Stats() models.Stats {
	return s.stats
}

// TickCount returns the number of ticks run so far.
func (s *Simulation) TickCount() int {
	return s.tick
}
