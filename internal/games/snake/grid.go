package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Grid is the rectangular playfield measured in tiles.
// The outermost ring of tiles is wall; everything inside it is playable.
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether p lies on the grid, walls included.
func (g Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsWall reports whether p is one of the ring tiles.
func (g Grid) IsWall(p core.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1
}

// InInterior reports whether p is a playable tile.
func (g Grid) InInterior(p core.Point) bool {
	return p.X > 0 && p.X < g.Width-1 && p.Y > 0 && p.Y < g.Height-1
}

// Center returns the tile the snake's head starts on.
func (g Grid) Center() core.Point {
	return core.Point{X: g.Width / 2, Y: g.Height / 2}
}

// Walls returns every wall tile in row-major order.
func (g Grid) Walls() []core.Point {
	if g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	walls := make([]core.Point, 0, 2*g.Width+2*max(g.Height-2, 0))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			if g.IsWall(p) {
				walls = append(walls, p)
			}
		}
	}
	return walls
}

// WallSet is a membership set of wall tiles.
type WallSet map[core.Point]struct{}

// NewWallSet builds a set from a list of tiles.
func NewWallSet(points []core.Point) WallSet {
	set := make(WallSet, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether p is in the set.
func (w WallSet) Contains(p core.Point) bool {
	_, ok := w[p]
	return ok
}

// WallKind classifies a wall tile for drawing.
type WallKind int

const (
	WallNone WallKind = iota
	WallHorizontal
	WallLeft
	WallRight
	WallTopLeft
	WallTopRight
	WallBottomLeft
	WallBottomRight
)

// WallKind returns the drawing class of the tile at p, or WallNone for non-wall tiles.
func (g Grid) WallKind(p core.Point) WallKind {
	if !g.IsWall(p) {
		return WallNone
	}
	top, bottom := p.Y == 0, p.Y == g.Height-1
	left, right := p.X == 0, p.X == g.Width-1
	switch {
	case top && left:
		return WallTopLeft
	case top && right:
		return WallTopRight
	case bottom && left:
		return WallBottomLeft
	case bottom && right:
		return WallBottomRight
	case left:
		return WallLeft
	case right:
		return WallRight
	default:
		return WallHorizontal
	}
}
