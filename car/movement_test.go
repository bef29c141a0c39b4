package car

import (
	"testing"

	"github.com/golangdaddy/crossroads/road"
)

func TestDecide(t *testing.T) {
	g := road.Default()
	tests := []struct {
		name         string
		x, y         int
		committed    bool
		green, clear bool
		want         Step
	}{
		{"Approaching on red", 100, 350, false, false, true, Step{Move: true}},
		{"At stop line on red", 340, 350, false, false, true, Step{}},
		{"At stop line on green", 340, 350, false, true, true, Step{Move: true}},
		{"Blocked by leader on green", 100, 350, false, true, false, Step{}},
		{"Crossed line commits", 342, 350, false, false, false, Step{Commit: true, Move: true}},
		{"Committed ignores gates", 420, 350, true, false, false, Step{Move: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(1, tt.x, tt.y, road.East, Straight)
			v.Committed = tt.committed
			if got := v.Decide(g, tt.green, tt.clear); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}

	inactive := New(1, 100, 350, road.East, Straight)
	inactive.Active = false
	if got := inactive.Decide(g, true, true); got != (Step{}) {
		t.Errorf("Inactive vehicle should not act, got %+v", got)
	}
}

func TestApplyCommitsOnce(t *testing.T) {
	g := road.Default()
	v := New(1, 342, 350, road.East, Straight)

	tr := v.Apply(g, Step{Commit: true, Move: true})
	if !tr.Committed || !v.Committed {
		t.Fatal("Expected vehicle to commit")
	}
	tr = v.Apply(g, Step{Commit: true, Move: true})
	if tr.Committed {
		t.Error("Commit must only be reported once")
	}
	if !v.Committed {
		t.Error("Commit must never revert")
	}
}

func TestStraightRun(t *testing.T) {
	g := road.Default()
	v := New(1, 0, 350, road.East, Straight)

	for n := 1; v.Active; n++ {
		tr := v.Apply(g, Step{Move: true})
		if v.X != n*Speed {
			t.Fatalf("Tick %d: expected x=%d, got %d", n, n*Speed, v.X)
		}
		if tr.Exited != !v.Active {
			t.Fatalf("Tick %d: exit transition mismatch", n)
		}
		if v.X > g.Width+road.ExitMargin && v.Active {
			t.Fatalf("Tick %d: vehicle past the margin is still active", n)
		}
	}
	if v.X != g.Width+road.ExitMargin+Speed {
		t.Errorf("Expected to retire at x=%d, got %d", g.Width+road.ExitMargin+Speed, v.X)
	}
	if v.Direction != road.East || v.Y != 350 {
		t.Errorf("Straight vehicle changed heading or lane: %+v", v)
	}
}

func TestTurns(t *testing.T) {
	g := road.Default()
	tests := []struct {
		name    string
		dir     road.Direction
		route   Route
		x, y    int
		wantDir road.Direction
		wantX   int
		wantY   int
	}{
		{"East left", road.East, Left, 448, 350, road.South, 450, 350},
		{"East right", road.East, Right, 398, 350, road.North, 400, 350},
		{"West left", road.West, Left, 402, 300, road.North, 400, 300},
		{"West right", road.West, Right, 452, 300, road.South, 450, 300},
		{"North left", road.North, Left, 400, 348, road.East, 400, 350},
		{"North right", road.North, Right, 400, 298, road.West, 400, 300},
		{"South left", road.South, Left, 450, 302, road.West, 450, 300},
		{"South right", road.South, Right, 450, 352, road.East, 450, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(1, tt.x, tt.y, tt.dir, tt.route)
			v.Committed = true

			tr := v.Apply(g, Step{Move: true})
			if !tr.Turned {
				t.Fatal("Expected turn")
			}
			if v.Direction != tt.wantDir {
				t.Errorf("Expected heading %s, got %s", tt.wantDir, v.Direction)
			}
			if v.X != tt.wantX || v.Y != tt.wantY {
				t.Errorf("Expected (%d, %d), got (%d, %d)", tt.wantX, tt.wantY, v.X, v.Y)
			}
			if v.Route != Straight {
				t.Errorf("Expected route to become Straight, got %s", v.Route)
			}
			if v.Lane() != g.Lane(tt.wantDir) {
				t.Errorf("Expected to land on lane %d, got %d", g.Lane(tt.wantDir), v.Lane())
			}
			if v.Origin != tt.dir {
				t.Errorf("Origin must not change on turn, got %s", v.Origin)
			}

			// A turned vehicle never turns again.
			before := v.Direction
			for i := 0; i < 200 && v.Active; i++ {
				if v.Apply(g, Step{Move: true}).Turned {
					t.Fatal("Vehicle turned twice")
				}
			}
			if v.Direction != before {
				t.Error("Heading changed after the turn")
			}
		})
	}
}

func TestTurnReachedFromEntry(t *testing.T) {
	g := road.Default()
	for _, dir := range road.Priority {
		for _, route := range []Route{Left, Right} {
			x, y := g.Entry(dir)
			v := New(1, x, y, dir, route)
			turned := false
			for i := 0; i < 1000 && v.Active; i++ {
				if v.Apply(g, Step{Move: true}).Turned {
					turned = true
					break
				}
			}
			if !turned {
				t.Errorf("%s %s: vehicle never turned", dir, route)
			}
		}
	}
}
