package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/golangdaddy/crossroads/game"
	"github.com/golangdaddy/crossroads/road"
	"github.com/golangdaddy/crossroads/trafficlight"
)

// Frontends the binary can run.
const (
	FrontendEbiten = "ebiten"
	FrontendTUI    = "tui"
)

// EnvFileVar names the variable that points at the .env file to load.
const EnvFileVar = "CROSSROADS_ENV_FILE"

const envPrefix = "CROSSROADS_"

// Config holds the startup settings of the simulator.
type Config struct {
	Width         int    // Canvas width in simulation units
	Height        int    // Canvas height in simulation units
	TPS           int    // Ticks per second
	EvaluateEvery int    // Light re-evaluation period in ticks
	SpawnAttempts int    // Retry budget of a random spawn
	Seed          int64  // Seed for route/direction draws, 0 picks one from the clock
	Frontend      string // ebiten or tui
	StatusAddr    string // Listen address of the status server, empty disables it
	Debug         bool   // Log simulation events
	LogFile       string // Log destination, empty means stderr
	Script        string // Traffic script to schedule at startup
	SummaryFile   string // Session summary written on exit
}

// Default returns the settings of the standard 900x700 intersection.
func Default() Config {
	return Config{
		Width:         road.DefaultWidth,
		Height:        road.DefaultHeight,
		TPS:           60,
		EvaluateEvery: trafficlight.DefaultEvaluateEvery,
		SpawnAttempts: game.DefaultSpawnAttempts,
		Frontend:      FrontendEbiten,
	}
}

// Load builds the configuration from defaults, the optional .env file,
// CROSSROADS_* environment variables and finally command-line args.
func Load(args []string) (Config, error) {
	cfg := Default()

	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadEnvFile(envFile); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("crossroads", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "ticks per second")
	fs.IntVar(&cfg.EvaluateEvery, "evaluate-every", cfg.EvaluateEvery, "light re-evaluation period in ticks")
	fs.IntVar(&cfg.SpawnAttempts, "spawn-attempts", cfg.SpawnAttempts, "random spawn retry budget")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend: ebiten or tui")
	fs.StringVar(&cfg.StatusAddr, "status-addr", cfg.StatusAddr, "status server listen address, empty disables")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log simulation events")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "traffic script of scheduled spawns")
	fs.StringVar(&cfg.SummaryFile, "summary-file", cfg.SummaryFile, "write a JSON session summary here on exit")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("failed to parse flags: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that the settings can drive a simulation.
func (c Config) Validate() error {
	minSide := 2*road.LaneWidth + 2*road.VehicleSize
	if c.Width < minSide || c.Height < minSide {
		return fmt.Errorf("canvas %dx%d is smaller than %dx%d", c.Width, c.Height, minSide, minSide)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.EvaluateEvery <= 0 {
		return fmt.Errorf("evaluate-every must be positive, got %d", c.EvaluateEvery)
	}
	if c.SpawnAttempts <= 0 {
		return fmt.Errorf("spawn-attempts must be positive, got %d", c.SpawnAttempts)
	}
	switch c.Frontend {
	case FrontendEbiten, FrontendTUI:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// Geometry returns the road geometry for the configured canvas.
func (c Config) Geometry() road.Geometry {
	return road.New(c.Width, c.Height)
}

// loadEnvFile loads path into the environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"WIDTH", &c.Width},
		{"HEIGHT", &c.Height},
		{"TPS", &c.TPS},
		{"EVALUATE_EVERY", &c.EvaluateEvery},
		{"SPAWN_ATTEMPTS", &c.SpawnAttempts},
	}
	for _, f := range ints {
		raw, ok := os.LookupEnv(envPrefix + f.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s%s %q: %w", envPrefix, f.name, raw, err)
		}
		*f.dst = n
	}

	if raw, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED %q: %w", envPrefix, raw, err)
		}
		c.Seed = n
	}
	if raw, ok := os.LookupEnv(envPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %sDEBUG %q: %w", envPrefix, raw, err)
		}
		c.Debug = b
	}
	if v, ok := os.LookupEnv(envPrefix + "FRONTEND"); ok {
		c.Frontend = v
	}
	if v, ok := os.LookupEnv(envPrefix + "STATUS_ADDR"); ok {
		c.StatusAddr = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SCRIPT"); ok {
		c.Script = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SUMMARY_FILE"); ok {
		c.SummaryFile = v
	}
	return nil
}
