package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultTailLength is the number of body segments a new snake starts with.
const DefaultTailLength = 3

// SegmentID is a stable handle to a body segment inside a snake's arena.
type SegmentID int

type arenaSlot struct {
	pos  core.Point
	live bool
}

// segmentArena stores body segment positions. Released slots are reused.
// Resolving an id that is not live panics: it means the chain is out of sync.
type segmentArena struct {
	slots []arenaSlot
	free  []SegmentID
}

// Spawn stores a new segment at p and returns its id.
func (a *segmentArena) Spawn(p core.Point) SegmentID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[id] = arenaSlot{pos: p, live: true}
		return id
	}
	a.slots = append(a.slots, arenaSlot{pos: p, live: true})
	return SegmentID(len(a.slots) - 1)
}

// Position returns the position of a live segment.
func (a *segmentArena) Position(id SegmentID) core.Point {
	return a.slot(id).pos
}

// Move sets the position of a live segment.
func (a *segmentArena) Move(id SegmentID, p core.Point) {
	a.slot(id).pos = p
}

// Release frees a live segment's slot.
func (a *segmentArena) Release(id SegmentID) {
	a.slot(id).live = false
	a.free = append(a.free, id)
}

// Reset drops every segment, keeping the backing storage.
func (a *segmentArena) Reset() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}

// Live returns the number of live segments.
func (a *segmentArena) Live() int {
	return len(a.slots) - len(a.free)
}

func (a *segmentArena) slot(id SegmentID) *arenaSlot {
	if id < 0 || int(id) >= len(a.slots) || !a.slots[id].live {
		panic(fmt.Sprintf("snake: segment %d is not live", id))
	}
	return &a.slots[id]
}

// Snake is the head plus its ordered body chain, closest-to-head first.
// The snake owns the arena its segments live in.
type Snake struct {
	Head    core.Point
	Heading Direction
	Tail    []SegmentID

	arena segmentArena
}

// NewSnake creates a snake at head with tailLen segments laid out behind it.
func NewSnake(head core.Point, heading Direction, tailLen int) *Snake {
	s := &Snake{}
	s.Reset(head, heading, tailLen)
	return s
}

// Reset rebuilds the snake in place, releasing the old chain.
func (s *Snake) Reset(head core.Point, heading Direction, tailLen int) {
	s.arena.Reset()
	s.Tail = s.Tail[:0]
	s.Head = head
	s.Heading = heading

	back := heading.Opposite().Delta()
	pos := head
	for range max(tailLen, 0) {
		pos = pos.Add(back)
		s.Tail = append(s.Tail, s.arena.Spawn(pos))
	}
}

// Advance moves the head one tile along Heading. Every segment then takes
// the position its predecessor held before the move; the last segment's old
// position is vacated.
func (s *Snake) Advance() {
	prev := s.Head
	s.Head = s.Head.Add(s.Heading.Delta())
	for _, id := range s.Tail {
		old := s.arena.Position(id)
		s.arena.Move(id, prev)
		prev = old
	}
}

// Grow appends a segment on top of the last one (or the head for an empty
// chain). It separates from its neighbour on the next Advance.
func (s *Snake) Grow() SegmentID {
	at := s.Head
	if n := len(s.Tail); n > 0 {
		at = s.arena.Position(s.Tail[n-1])
	}
	id := s.arena.Spawn(at)
	s.Tail = append(s.Tail, id)
	return id
}

// Segment returns the position of the i-th body segment.
func (s *Snake) Segment(i int) core.Point {
	return s.arena.Position(s.Tail[i])
}

// Segments returns the body positions, closest-to-head first.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, len(s.Tail))
	for i, id := range s.Tail {
		out[i] = s.arena.Position(id)
	}
	return out
}

// Positions returns the head followed by the body.
func (s *Snake) Positions() []core.Point {
	return append([]core.Point{s.Head}, s.Segments()...)
}

// Len returns the number of tiles the snake covers, head included.
func (s *Snake) Len() int {
	return len(s.Tail) + 1
}
