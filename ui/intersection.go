package ui

import (
	"context"
	"image/color"
	"log"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/crossroads/game"
)

// IntersectionView implements ebiten.Game for the simulation. Each Update
// applies the keys pressed since the last frame and then advances one tick.
// The game ends on Escape or when ctx is cancelled.
type IntersectionView struct {
	ctx    context.Context
	sim    *game.Simulation
	onTick func(*game.Simulation) // Called after every tick, may be nil
	face   text.Face
	pixel  *ebiten.Image
}

// NewIntersectionView creates a view driving sim.
func NewIntersectionView(ctx context.Context, sim *game.Simulation, onTick func(*game.Simulation)) *IntersectionView {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &IntersectionView{
		ctx:    ctx,
		sim:    sim,
		onTick: onTick,
		face:   text.NewGoXFace(bitmapfont.Face),
		pixel:  pixel,
	}
}

// Update is called every tick (1/TPS [s]).
func (iv *IntersectionView) Update() error {
	if iv.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, cmd := range commandsFor(inpututil.IsKeyJustPressed) {
		if iv.sim.Apply(cmd) {
			log.Printf("Quit requested at tick %d", iv.sim.TickCount())
			return ebiten.Termination
		}
	}

	iv.sim.Tick()
	if iv.onTick != nil {
		iv.onTick(iv.sim)
	}
	return nil
}

// Draw renders road markings, lights, vehicles and the HUD.
func (iv *IntersectionView) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawRoad(screen, iv.pixel, iv.sim.Geometry())

	for _, d := range iv.sim.Drawables() {
		drawBox(screen, iv.pixel, d)
	}

	drawHUD(screen, iv.pixel, iv.sim.StatusLines(), iv.face)
}

// Layout keeps the logical screen at the canvas size; ebiten scales it to
// the window.
func (iv *IntersectionView) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g := iv.sim.Geometry()
	return g.Width, g.Height
}
