package trafficlight

import (
	"testing"

	"github.com/golangdaddy/crossroads/car"
	"github.com/golangdaddy/crossroads/models"
	"github.com/golangdaddy/crossroads/road"
)

func countGreen(lights []Light) int {
	n := 0
	for _, l := range lights {
		if l.Status == Green {
			n++
		}
	}
	return n
}

func TestNewController(t *testing.T) {
	c := NewController(road.Default(), 0)
	lights := c.Lights()
	if len(lights) != 4 {
		t.Fatalf("Expected 4 lights, got %d", len(lights))
	}
	for i, l := range lights {
		if l.ID != i+1 {
			t.Errorf("Expected light ID %d, got %d", i+1, l.ID)
		}
		if l.Status != Red {
			t.Errorf("%s: expected initial Red", l)
		}
	}
	if _, ok := c.Green(); ok {
		t.Error("No direction should be green before the first evaluation")
	}
	if !c.Due(0) {
		t.Error("First evaluation should be due on tick 0")
	}
}

func TestSelectsBusiest(t *testing.T) {
	c := NewController(road.Default(), 0)
	capacity := models.NewCapacity(map[road.Direction]int{
		road.North: 3,
		road.South: 0,
		road.East:  1,
		road.West:  1,
	})

	if !c.Update(0, capacity, nil) {
		t.Fatal("Expected the first evaluation to change the lights")
	}
	green, ok := c.Green()
	if !ok || green != road.North {
		t.Errorf("Expected North green, got %v (ok=%v)", green, ok)
	}
	if !c.IsGreen(road.North) || c.IsGreen(road.East) {
		t.Error("IsGreen disagrees with the selected direction")
	}
	if n := countGreen(c.Lights()); n != 1 {
		t.Errorf("Expected exactly one green, got %d", n)
	}
}

func TestTieBreakIsDeterministic(t *testing.T) {
	capacity := models.NewCapacity(map[road.Direction]int{road.West: 2, road.South: 2, road.East: 2})
	for i := 0; i < 50; i++ {
		c := NewController(road.Default(), 0)
		if got := c.Evaluate(capacity); got != road.East {
			t.Fatalf("Run %d: expected East to win the tie, got %s", i, got)
		}
	}
}

func TestPeriodicEvaluation(t *testing.T) {
	c := NewController(road.Default(), 10)
	east := models.NewCapacity(map[road.Direction]int{road.East: 1})
	south := models.NewCapacity(map[road.Direction]int{road.South: 1})

	c.Update(0, east, nil)
	for tick := 1; tick < 10; tick++ {
		if c.Update(tick, south, nil) {
			t.Fatalf("Tick %d: lights changed before the period elapsed", tick)
		}
	}
	if !c.Update(10, south, nil) {
		t.Fatal("Expected change at tick 10")
	}
	if green, _ := c.Green(); green != road.South {
		t.Errorf("Expected South green, got %s", green)
	}
	if c.Update(11, east, nil) {
		t.Error("Evaluation must not repeat before the next period")
	}
}

func TestClearanceInterlock(t *testing.T) {
	g := road.Default()
	c := NewController(g, 10)
	c.Update(0, models.NewCapacity(map[road.Direction]int{road.East: 1}), nil)

	occupant := car.New(1, 420, 350, road.East, car.Straight)
	occupant.Committed = true
	west := models.NewCapacity(map[road.Direction]int{road.West: 5})

	for tick := 10; tick < 20; tick++ {
		if c.Update(tick, west, []car.Vehicle{occupant}) {
			t.Fatalf("Tick %d: lights changed with the center occupied", tick)
		}
		if green, _ := c.Green(); green != road.East {
			t.Fatalf("Tick %d: expected East to stay green", tick)
		}
	}

	// Once the vehicle is gone the overdue evaluation runs immediately.
	occupant.Active = false
	if !c.Update(20, west, []car.Vehicle{occupant}) {
		t.Fatal("Expected the overdue evaluation to run once clear")
	}
	if green, _ := c.Green(); green != road.West {
		t.Errorf("Expected West green, got %s", green)
	}
}

func TestUpdateReportsNoChangeForSameWinner(t *testing.T) {
	c := NewController(road.Default(), 1)
	capacity := models.NewCapacity(map[road.Direction]int{road.East: 1})
	c.Update(0, capacity, nil)
	if c.Update(1, capacity, nil) {
		t.Error("Re-selecting the same direction is not a change")
	}
	if n := countGreen(c.Lights()); n != 1 {
		t.Errorf("Expected exactly one green, got %d", n)
	}
}

func TestCenterClear(t *testing.T) {
	g := road.Default()
	tests := []struct {
		name string
		v    car.Vehicle
		want bool
	}{
		{"Waiting at stop line", car.New(1, 340, 350, road.East, car.Straight), true},
		{"Past stop line", car.New(1, 342, 350, road.East, car.Straight), false},
		{"Inside intersection", car.New(1, 420, 320, road.South, car.Straight), false},
		{"Far away", car.New(1, 0, 350, road.East, car.Straight), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterClear(g, []car.Vehicle{tt.v}); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLightPlacement(t *testing.T) {
	g := road.Default()
	c := NewController(g, 0)
	for _, l := range c.Lights() {
		x, y := g.LightPosition(l.Direction)
		if l.X != x || l.Y != y {
			t.Errorf("%s: expected (%d, %d), got (%d, %d)", l, x, y, l.X, l.Y)
		}
	}
}
