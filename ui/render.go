package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/crossroads/game"
	"github.com/golangdaddy/crossroads/road"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	laneLineColor   = color.RGBA{255, 255, 255, 255}
	stopLineColor   = color.RGBA{255, 255, 0, 255}
	outlineColor    = color.RGBA{20, 20, 20, 255}
	hudPanelColor   = color.RGBA{0, 0, 0, 180}
	hudTextColor    = color.RGBA{230, 230, 230, 255}
	hudHelpColor    = color.RGBA{150, 150, 200, 255}
)

const outlineWidth = 2

// fillRect draws a solid rectangle by scaling a 1x1 white image.
func fillRect(screen, pixel *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, op)
}

func fillRoadRect(screen, pixel *ebiten.Image, r road.Rect, clr color.Color) {
	fillRect(screen, pixel, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), clr)
}

// drawRoad paints the lane dividers and the stop line of every approach.
func drawRoad(screen, pixel *ebiten.Image, g road.Geometry) {
	for _, line := range g.LaneLines() {
		fillRoadRect(screen, pixel, line, laneLineColor)
	}
	for _, d := range road.Priority {
		fillRoadRect(screen, pixel, g.StopMarking(d), stopLineColor)
	}
}

// drawBox draws a drawable with a dark outline so adjacent vehicles stay
// distinguishable.
func drawBox(screen, pixel *ebiten.Image, d game.Drawable) {
	x, y := float64(d.X), float64(d.Y)
	w, h := float64(d.W), float64(d.H)
	fillRect(screen, pixel, x, y, w, h, outlineColor)
	fillRect(screen, pixel, x+outlineWidth, y+outlineWidth, w-2*outlineWidth, h-2*outlineWidth, d.Color)
}

// drawTextAt draws text with its top-left corner near (x, y).
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color, face text.Face) {
	scale := size / 16.0
	scaledHeight := 16.0 * scale

	textX := x
	textY := y - scaledHeight/2 + 8

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX/scale, textY/scale)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, face, op)
}

// drawHUD renders the status lines and key help in the top-left corner.
func drawHUD(screen, pixel *ebiten.Image, lines []string, face text.Face) {
	const (
		startX     = 10.0
		startY     = 10.0
		lineHeight = 18.0
	)

	width := 0.0
	for _, l := range lines {
		if w := text.Advance(l, face); w > width {
			width = w
		}
	}
	if w := text.Advance(game.KeyHelp, face); w > width {
		width = w
	}
	height := lineHeight * float64(len(lines)+1)
	fillRect(screen, pixel, startX-4, startY-4, width+8, height+8, hudPanelColor)

	y := startY
	for _, l := range lines {
		drawTextAt(screen, l, startX, y, 16, hudTextColor, face)
		y += lineHeight
	}
	drawTextAt(screen, game.KeyHelp, startX, y, 16, hudHelpColor, face)
}
