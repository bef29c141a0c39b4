package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/crossroads/game"
	"github.com/golangdaddy/crossroads/road"
)

var (
	laneStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stopStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hudStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	helpStyle = tcell.StyleDefault.Foreground(tcell.ColorLightSlateGray)
)

// App runs the simulation in a terminal. The canvas is scaled to fit the
// rows above the HUD.
type App struct {
	screen tcell.Screen
	sim    *game.Simulation
	tps    int
	onTick func(*game.Simulation)
}

// New creates an app drawing sim onto an initialised screen.
func New(screen tcell.Screen, sim *game.Simulation, tps int, onTick func(*game.Simulation)) *App {
	if tps <= 0 {
		tps = 60
	}
	return &App{
		screen: screen,
		sim:    sim,
		tps:    tps,
		onTick: onTick,
	}
}

// Run opens the terminal, runs the simulation until quit or ctx is done and
// restores the terminal.
func Run(ctx context.Context, sim *game.Simulation, tps int, onTick func(*game.Simulation)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	New(screen, sim, tps, onTick).Loop(ctx)
	return nil
}

// Loop ticks the simulation at the app's rate and handles key events.
func (a *App) Loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(a.tps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			if !a.handleEvent(ev) {
				log.Printf("Quit requested at tick %d", a.sim.TickCount())
				return
			}

		case <-ticker.C:
			a.sim.Tick()
			if a.onTick != nil {
				a.onTick(a.sim)
			}
			a.draw()
		}
	}
}

// handleEvent applies an input event and reports whether to keep running.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, ok := commandFor(ev.Key(), ev.Rune())
		if !ok {
			return true
		}
		return !a.sim.Apply(cmd)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// commandFor maps a key press to a command.
func commandFor(key tcell.Key, r rune) (game.Command, bool) {
	switch key {
	case tcell.KeyDown:
		return game.SpawnNorth, true
	case tcell.KeyUp:
		return game.SpawnSouth, true
	case tcell.KeyRight:
		return game.SpawnEast, true
	case tcell.KeyLeft:
		return game.SpawnWest, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit, true
	case tcell.KeyRune:
		switch r {
		case 'r', 'R':
			return game.SpawnRandom, true
		case 'q', 'Q':
			return game.Quit, true
		}
	}
	return 0, false
}

// draw renders the road, lights, vehicles and HUD.
func (a *App) draw() {
	a.screen.Clear()

	lines := append(a.sim.StatusLines(), game.KeyHelp)
	cols, rows := a.screen.Size()
	v := newViewport(a.sim.Geometry(), cols, rows-len(lines))

	if v.rows > 0 {
		a.drawRoad(v)
		for _, d := range a.sim.Drawables() {
			c := d.Color
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			a.fill(v.project(road.NewRect(d.X, d.Y, d.W, d.H)), '█', style)
		}
	}

	for i, l := range lines {
		style := hudStyle
		if i == len(lines)-1 {
			style = helpStyle
		}
		a.text(0, rows-len(lines)+i, l, style)
	}

	a.screen.Show()
}

func (a *App) drawRoad(v viewport) {
	g := a.sim.Geometry()
	lines := g.LaneLines()
	for i, line := range lines {
		if i < len(lines)/2 {
			a.fill(v.project(road.NewRect(line.X+line.W/2, line.Y, 0, line.H)), '│', laneStyle)
			continue
		}
		cells := v.project(road.NewRect(line.X, line.Y+line.H/2, line.W, 0))
		for x := cells.X; x < cells.Right(); x++ {
			for y := cells.Y; y < cells.Bottom(); y++ {
				r := '─'
				if mainc, _, _, _ := a.screen.GetContent(x, y); mainc == '│' {
					r = '┼'
				}
				a.screen.SetContent(x, y, r, nil, laneStyle)
			}
		}
	}
	for _, d := range road.Priority {
		a.fill(v.project(g.StopMarking(d)), '▒', stopStyle)
	}
}

func (a *App) fill(cells road.Rect, r rune, style tcell.Style) {
	for x := cells.X; x < cells.Right(); x++ {
		for y := cells.Y; y < cells.Bottom(); y++ {
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
