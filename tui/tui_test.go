package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/game"
	"github.com/golangdaddy/crossroads/road"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want game.Command
		ok   bool
	}{
		{"down", tcell.KeyDown, 0, game.SpawnNorth, true},
		{"up", tcell.KeyUp, 0, game.SpawnSouth, true},
		{"right", tcell.KeyRight, 0, game.SpawnEast, true},
		{"left", tcell.KeyLeft, 0, game.SpawnWest, true},
		{"r", tcell.KeyRune, 'r', game.SpawnRandom, true},
		{"R", tcell.KeyRune, 'R', game.SpawnRandom, true},
		{"q", tcell.KeyRune, 'q', game.Quit, true},
		{"escape", tcell.KeyEscape, 0, game.Quit, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.Quit, true},
		{"unbound rune", tcell.KeyRune, 'x', 0, false},
		{"unbound key", tcell.KeyEnter, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandFor(tt.key, tt.r)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestViewportProject(t *testing.T) {
	v := newViewport(road.Default(), 90, 35)
	tests := []struct {
		name string
		in   road.Rect
		want road.Rect
	}{
		{"vehicle at east entry", road.VehicleRect(0, 350), road.NewRect(0, 17, 5, 3)},
		{"light", road.NewRect(350, 250, 50, 50), road.NewRect(35, 12, 5, 3)},
		{"zero width line", road.NewRect(400, 0, 0, 700), road.NewRect(40, 0, 1, 35)},
		{"partly off canvas", road.VehicleRect(880, 0), road.NewRect(88, 0, 2, 3)},
		{"fully off canvas", road.VehicleRect(-200, 0), road.NewRect(0, 0, 0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.project(tt.in); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func newTestApp(t *testing.T, cols, rows int) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	sim := game.New(game.Options{Seed: 1})
	return New(screen, sim, 60, nil), screen
}

func rowText(screen tcell.Screen, y, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawRendersVehiclesAndLights(t *testing.T) {
	app, screen := newTestApp(t, 90, 39)
	if _, ok := app.sim.SpawnRoute(road.East, car.Straight); !ok {
		t.Fatal("Expected spawn on an empty road")
	}
	app.draw()

	mainc, _, style, _ := screen.GetContent(2, 18)
	fg, _, _ := style.Decompose()
	if mainc != '█' || fg != tcell.NewRGBColor(0, 191, 255) {
		t.Errorf("Expected straight vehicle cell, got %q with %v", mainc, fg)
	}

	mainc, _, style, _ = screen.GetContent(36, 13)
	fg, _, _ = style.Decompose()
	if mainc != '█' || fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red light cell, got %q with %v", mainc, fg)
	}

	if mainc, _, _, _ := screen.GetContent(40, 0); mainc != '│' {
		t.Errorf("Expected lane line at column 40, got %q", mainc)
	}

	if got := rowText(screen, 35, 90); got != "Tick 0  Green: none" {
		t.Errorf("Unexpected HUD row %q", got)
	}
	if got := rowText(screen, 38, 90); got != game.KeyHelp {
		t.Errorf("Unexpected help row %q", got)
	}
}

func TestHandleEvent(t *testing.T) {
	app, _ := newTestApp(t, 90, 39)

	if !app.handleEvent(tcell.NewEventResize(100, 40)) {
		t.Error("Resize should keep the app running")
	}
	if !app.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Error("Spawn should keep the app running")
	}
	if got := app.sim.Stats().Spawned; got != 1 {
		t.Errorf("Expected 1 spawned vehicle, got %d", got)
	}
	if app.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should stop the app")
	}
}
