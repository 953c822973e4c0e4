package snake

import "fmt"

// State is the lifecycle phase of a session.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Step runs the work of one expired timer period for state and returns the
// next state.
//
// Playing: consume one queued direction, move, check collisions, then eat.
// GameOver: advance the death presentation and start a fresh session once
// its last frame has been shown.
func Step(s *Sim, state State) State {
	switch state {
	case StatePlaying:
		return s.stepPlaying()
	case StateGameOver:
		return s.stepGameOver()
	default:
		panic(fmt.Sprintf("snake: unknown state %d", state))
	}
}
