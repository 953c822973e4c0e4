package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Sprite is the drawing class of a snake tile. Sprites are derived from
// positions each frame and never stored in the simulation.
type Sprite int

const (
	SpriteNone Sprite = iota

	SpriteHeadUp
	SpriteHeadDown
	SpriteHeadLeft
	SpriteHeadRight

	SpriteVertical
	SpriteHorizontal

	// Corners are named after the two neighbours they connect.
	SpriteUpRight
	SpriteUpLeft
	SpriteDownRight
	SpriteDownLeft

	// End caps are named after the direction of their only neighbour.
	SpriteEndUp
	SpriteEndDown
	SpriteEndLeft
	SpriteEndRight
)

// HeadSprite returns the head sprite for a heading.
func HeadSprite(d Direction) Sprite {
	switch d {
	case DirUp:
		return SpriteHeadUp
	case DirDown:
		return SpriteHeadDown
	case DirLeft:
		return SpriteHeadLeft
	case DirRight:
		return SpriteHeadRight
	default:
		return SpriteNone
	}
}

// SegmentSprite classifies a body segment at cur from its neighbours:
// prev is the tile toward the head and next the tile toward the tail.
// Neighbours that are not orthogonally adjacent yield SpriteNone.
func SegmentSprite(prev, cur, next core.Point) Sprite {
	a, ok := stepDirection(cur, prev)
	if !ok {
		return SpriteNone
	}
	b, ok := stepDirection(cur, next)
	if !ok || a == b {
		return SpriteNone
	}
	if a == b.Opposite() {
		if a == DirUp || a == DirDown {
			return SpriteVertical
		}
		return SpriteHorizontal
	}

	up := a == DirUp || b == DirUp
	right := a == DirRight || b == DirRight
	switch {
	case up && right:
		return SpriteUpRight
	case up:
		return SpriteUpLeft
	case right:
		return SpriteDownRight
	default:
		return SpriteDownLeft
	}
}

// TailEndSprite classifies the last segment at cur from its only neighbour prev.
func TailEndSprite(prev, cur core.Point) Sprite {
	d, ok := stepDirection(cur, prev)
	if !ok {
		return SpriteNone
	}
	switch d {
	case DirUp:
		return SpriteEndUp
	case DirDown:
		return SpriteEndDown
	case DirLeft:
		return SpriteEndLeft
	default:
		return SpriteEndRight
	}
}

// BodySprites classifies every body segment of a chain, closest-to-head first.
func BodySprites(head core.Point, segments []core.Point) []Sprite {
	out := make([]Sprite, len(segments))
	for i, cur := range segments {
		prev := head
		if i > 0 {
			prev = segments[i-1]
		}
		if i == len(segments)-1 {
			out[i] = TailEndSprite(prev, cur)
			continue
		}
		out[i] = SegmentSprite(prev, cur, segments[i+1])
	}
	return out
}

// stepDirection returns the direction of a unit step from one tile to an adjacent one.
func stepDirection(from, to core.Point) (Direction, bool) {
	switch to.Sub(from) {
	case core.Point{X: 0, Y: -1}:
		return DirUp, true
	case core.Point{X: 0, Y: 1}:
		return DirDown, true
	case core.Point{X: -1, Y: 0}:
		return DirLeft, true
	case core.Point{X: 1, Y: 0}:
		return DirRight, true
	}
	return 0, false
}
