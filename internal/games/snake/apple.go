package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// AppleRange bounds random apple placement. Coordinates are drawn from
// [Low, size-InitialHigh) for the first apple of a session and from
// [Low, size-RespawnHigh) for every apple after that.
type AppleRange struct {
	Low         int
	InitialHigh int
	RespawnHigh int
}

// DefaultAppleRange keeps the first apple two tiles from the far walls and
// lets later apples land next to them.
var DefaultAppleRange = AppleRange{Low: 2, InitialHigh: 2, RespawnHigh: 1}

// Initial returns a position for the first apple of a session.
func (r AppleRange) Initial(rng *rand.Rand, g Grid) core.Point {
	return placeApple(rng, g, r.Low, r.InitialHigh)
}

// Respawn returns a position for an apple replacing an eaten one.
func (r AppleRange) Respawn(rng *rand.Rand, g Grid) core.Point {
	return placeApple(rng, g, r.Low, r.RespawnHigh)
}

func placeApple(rng *rand.Rand, g Grid, low, high int) core.Point {
	return core.Point{
		X: low + rng.Intn(max(g.Width-high-low, 1)),
		Y: low + rng.Intn(max(g.Height-high-low, 1)),
	}
}
