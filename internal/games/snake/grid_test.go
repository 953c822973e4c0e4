package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGridWalls(t *testing.T) {
	g := Grid{Width: 22, Height: 22}

	walls := g.Walls()
	if len(walls) != 84 {
		t.Fatalf("len(Walls()) = %d, want 84", len(walls))
	}
	for _, w := range walls {
		if !g.IsWall(w) {
			t.Errorf("Walls() returned non-wall tile %v", w)
		}
		if g.InInterior(w) {
			t.Errorf("wall tile %v reported as interior", w)
		}
	}

	interior := 0
	for y := range g.Height {
		for x := range g.Width {
			if g.InInterior(core.Point{X: x, Y: y}) {
				interior++
			}
		}
	}
	if interior != 400 {
		t.Errorf("interior tiles = %d, want 400", interior)
	}
}

func TestGridIsWall(t *testing.T) {
	g := Grid{Width: 22, Height: 22}
	tests := []struct {
		p    core.Point
		want bool
	}{
		{core.Point{X: 0, Y: 5}, true},
		{core.Point{X: 21, Y: 11}, true},
		{core.Point{X: 5, Y: 0}, true},
		{core.Point{X: 5, Y: 21}, true},
		{core.Point{X: 1, Y: 1}, false},
		{core.Point{X: 20, Y: 20}, false},
		{core.Point{X: 11, Y: 11}, false},
		{core.Point{X: 22, Y: 11}, false}, // off the grid
		{core.Point{X: -1, Y: 0}, false},
	}
	for _, tt := range tests {
		if got := g.IsWall(tt.p); got != tt.want {
			t.Errorf("IsWall(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridCenter(t *testing.T) {
	g := Grid{Width: 22, Height: 22}
	if c := g.Center(); c != (core.Point{X: 11, Y: 11}) {
		t.Errorf("Center() = %v, want (11,11)", c)
	}
}

func TestWallKind(t *testing.T) {
	g := Grid{Width: 22, Height: 22}
	tests := []struct {
		p    core.Point
		want WallKind
	}{
		{core.Point{X: 0, Y: 0}, WallTopLeft},
		{core.Point{X: 21, Y: 0}, WallTopRight},
		{core.Point{X: 0, Y: 21}, WallBottomLeft},
		{core.Point{X: 21, Y: 21}, WallBottomRight},
		{core.Point{X: 7, Y: 0}, WallHorizontal},
		{core.Point{X: 7, Y: 21}, WallHorizontal},
		{core.Point{X: 0, Y: 7}, WallLeft},
		{core.Point{X: 21, Y: 7}, WallRight},
		{core.Point{X: 7, Y: 7}, WallNone},
	}
	for _, tt := range tests {
		if got := g.WallKind(tt.p); got != tt.want {
			t.Errorf("WallKind(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestWallSet(t *testing.T) {
	g := Grid{Width: 22, Height: 22}
	set := NewWallSet(g.Walls())
	if !HitsWall(core.Point{X: 21, Y: 11}, set) {
		t.Error("HitsWall((21,11)) = false, want true")
	}
	if HitsWall(core.Point{X: 20, Y: 11}, set) {
		t.Error("HitsWall((20,11)) = true, want false")
	}
}
