package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// HitsBody reports whether the head shares a tile with any body segment.
func HitsBody(s *Snake) bool {
	for _, id := range s.Tail {
		if s.arena.Position(id) == s.Head {
			return true
		}
	}
	return false
}

// HitsWall reports whether head is on a wall tile.
func HitsWall(head core.Point, walls WallSet) bool {
	return walls.Contains(head)
}
