package trafficlight

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/models"
	"github.com/golangdaddy/crossroads/road"
)

// DefaultEvaluateEvery is the re-evaluation period in ticks (2s at 60 TPS).
const DefaultEvaluateEvery = 120

// Status is the colour a light shows.
type Status int

const (
	Red Status = iota
	Green
)

func (s Status) String() string {
	if s == Green {
		return "Green"
	}
	return "Red"
}

// Color returns the paint for a light showing s.
func (s Status) Color() color.RGBA {
	if s == Green {
		return color.RGBA{0, 255, 0, 255}
	}
	return color.RGBA{255, 0, 0, 255}
}

// Light is the signal controlling one approach.
type Light struct {
	ID        int // 1..4
	Direction road.Direction
	Status    Status
	X, Y      int // Drawing position
}

// Controller grants right of way to the approach with the most queued
// vehicles. Re-evaluation is periodic and only happens while the centre of
// the intersection is empty.
type Controller struct {
	geometry road.Geometry
	lights   [road.DirectionCount]Light
	every    int
	next     int
}

// NewController creates a controller with all lights red. The first
// evaluation is due on tick 0. every <= 0 selects DefaultEvaluateEvery.
func NewController(g road.Geometry, every int) *Controller {
	if every <= 0 {
		every = DefaultEvaluateEvery
	}

	c := &Controller{geometry: g, every: every}
	for i, d := range road.Priority {
		x, y := g.LightPosition(d)
		c.lights[i] = Light{ID: i + 1, Direction: d, Status: Red, X: x, Y: y}
	}
	return c
}

// Lights returns a copy of the four lights in ID order.
func (c *Controller) Lights() []Light {
	out := make([]Light, len(c.lights))
	copy(out, c.lights[:])
	return out
}

// Green returns the direction currently holding right of way.
func (c *Controller) Green() (road.Direction, bool) {
	for _, l := range c.lights {
		if l.Status == Green {
			return l.Direction, true
		}
	}
	return 0, false
}

// IsGreen reports whether vehicles heading d may pass their stop line.
func (c *Controller) IsGreen(d road.Direction) bool {
	for _, l := range c.lights {
		if l.Direction == d {
			return l.Status == Green
		}
	}
	return false
}

// Due reports whether a re-evaluation is scheduled at or before tick.
func (c *Controller) Due(tick int) bool {
	return tick >= c.next
}

// Update runs a due re-evaluation if the centre region is clear. When the
// region is occupied the lights keep their state and the evaluation stays
// due for the next tick. It reports whether the green direction changed.
func (c *Controller) Update(tick int, capacity models.Capacity, vehicles []car.Vehicle) bool {
	if !c.Due(tick) || !CenterClear(c.geometry, vehicles) {
		return false
	}
	c.next = tick + c.every

	before, hadGreen := c.Green()
	after := c.Evaluate(capacity)
	return !hadGreen || before != after
}

// Evaluate sets the busiest approach green and every other light red. Ties
// resolve in road.Priority order.
func (c *Controller) Evaluate(capacity models.Capacity) road.Direction {
	winner := capacity.Busiest()
	for i := range c.lights {
		c.lights[i].Status = Red
	}
	for i := range c.lights {
		if c.lights[i].Direction == winner {
			c.lights[i].Status = Green
		}
	}
	return winner
}

// CenterClear reports whether no active vehicle overlaps the centre region.
func CenterClear(g road.Geometry, vehicles []car.Vehicle) bool {
	region := g.CenterRegion()
	for _, v := range vehicles {
		if v.Active && region.Intersects(v.Rect()) {
			return false
		}
	}
	return true
}

func (l Light) String() string {
	return fmt.Sprintf("light#%d(%s %s)", l.ID, l.Direction, l.Status)
}
