package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/crossroads/config"
	"github.com/golangdaddy/crossroads/game"
	"github.com/golangdaddy/crossroads/models"
	"github.com/golangdaddy/crossroads/status"
	"github.com/golangdaddy/crossroads/tui"
	"github.com/golangdaddy/crossroads/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := game.New(game.Options{
		Geometry:      cfg.Geometry(),
		EvaluateEvery: cfg.EvaluateEvery,
		SpawnAttempts: cfg.SpawnAttempts,
		Seed:          seed,
		Logger:        simLogger(cfg),
	})
	if cfg.Script != "" {
		entries, err := game.LoadScript(cfg.Script)
		if err != nil {
			log.Fatal(err)
		}
		sim.Schedule(entries)
		log.Printf("Scheduled %d scripted spawns from %s", len(entries), cfg.Script)
	}
	session := models.NewSession(seed)

	log.Printf("Starting %dx%d intersection at %d TPS (seed %d, frontend %s)",
		cfg.Width, cfg.Height, cfg.TPS, seed, cfg.Frontend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var onTick func(*game.Simulation)
	if cfg.StatusAddr != "" {
		board := status.NewBoard()
		board.Publish(status.Capture(sim))
		onTick = func(s *game.Simulation) {
			board.Publish(status.Capture(s))
		}
		go func() {
			if err := status.Serve(ctx, cfg.StatusAddr, board); err != nil {
				log.Printf("Status server stopped: %v", err)
			}
		}()
	}

	switch cfg.Frontend {
	case config.FrontendTUI:
		err = tui.Run(ctx, sim, cfg.TPS, onTick)
	default:
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ebiten.SetWindowTitle("Crossroads")
		ebiten.SetTPS(cfg.TPS)
		err = ebiten.RunGame(ui.NewIntersectionView(ctx, sim, onTick))
	}
	if err != nil {
		log.Fatal(err)
	}

	st := sim.Stats()
	session.Finish(sim.TickCount(), st, sim.Capacity())
	log.Printf("Stopped after %d ticks in %s: %d spawned, %d exited",
		sim.TickCount(), session.Duration().Round(time.Second), st.Spawned, st.Exited)
	if cfg.SummaryFile != "" {
		if err := session.SaveToFile(cfg.SummaryFile); err != nil {
			log.Printf("Failed to save session summary: %v", err)
		}
	}
}

// setupLogging points the standard logger at the configured file. The
// terminal frontend owns stdout and stderr, so without a file its logs are
// discarded.
func setupLogging(cfg config.Config) (*os.File, error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return f, nil
	}
	if cfg.Frontend == config.FrontendTUI {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	log.SetOutput(os.Stderr)
	return nil, nil
}

// simLogger returns the logger for simulation events, or nil to drop them.
func simLogger(cfg config.Config) *log.Logger {
	if !cfg.Debug {
		return nil
	}
	return log.New(log.Writer(), "sim: ", log.LstdFlags)
}
