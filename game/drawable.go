package game

import (
	"image/color"

	"github.com/golangdaddy/crossroads/road"
)

// Drawable is a filled rectangle the frontend renders each tick.
type Drawable struct {
	X, Y  int
	W, H  int
	Color color.RGBA
}

// Drawables returns the lights followed by every active vehicle.
func (s *Simulation) Drawables() []Drawable {
	out := make([]Drawable, 0, road.DirectionCount+len(s.vehicles))
	for _, l := range s.lights.Lights() {
		out = append(out, Drawable{
			X: l.X, Y: l.Y,
			W: road.LightSize, H: road.LightSize,
			Color: l.Status.Color(),
		})
	}
	for _, v := range s.vehicles {
		if !v.Active {
			continue
		}
		out = append(out, Drawable{
			X: v.X, Y: v.Y,
			W: road.VehicleSize, H: road.VehicleSize,
			Color: v.Color,
		})
	}
	return out
}
