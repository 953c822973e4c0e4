package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// DefaultQueueCapacity is the number of steering inputs buffered between moves.
const DefaultQueueCapacity = 10

// Opposite returns the direction pointing the other way on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction. Rows grow downward.
func (d Direction) Delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFromAction maps a steering action to a direction.
func directionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

type queueSlot struct {
	dir Direction
	set bool
}

// DirectionQueue is a fixed-capacity FIFO of pending steering inputs.
// A push onto a full queue overwrites the oldest entry, so the newest
// input is never lost. The backing slots are allocated once.
type DirectionQueue struct {
	slots []queueSlot
	head  int
	tail  int
	size  int
}

// NewDirectionQueue creates an empty queue. Non-positive capacities use DefaultQueueCapacity.
func NewDirectionQueue(capacity int) *DirectionQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &DirectionQueue{slots: make([]queueSlot, capacity)}
}

// Push appends d, dropping the oldest entry when the queue is full.
func (q *DirectionQueue) Push(d Direction) {
	if q.size == len(q.slots) {
		// tail == head here; the write below lands on the oldest slot
		q.head = (q.head + 1) % len(q.slots)
		q.size--
	}
	q.slots[q.tail] = queueSlot{dir: d, set: true}
	q.tail = (q.tail + 1) % len(q.slots)
	q.size++
}

// Pop removes and returns the oldest entry. ok is false when the queue is empty.
func (q *DirectionQueue) Pop() (d Direction, ok bool) {
	if q.size == 0 {
		return 0, false
	}
	slot := q.slots[q.head]
	q.slots[q.head] = queueSlot{}
	q.head = (q.head + 1) % len(q.slots)
	q.size--
	return slot.dir, slot.set
}

// Peek returns the entry Pop would return without removing it.
func (q *DirectionQueue) Peek() (d Direction, ok bool) {
	if q.size == 0 {
		return 0, false
	}
	slot := q.slots[q.head]
	return slot.dir, slot.set
}

// Offer pushes d unless it repeats or reverses the next pending direction.
// Returns whether d was queued.
func (q *DirectionQueue) Offer(d Direction) bool {
	if next, ok := q.Peek(); ok && (next == d || next == d.Opposite()) {
		return false
	}
	q.Push(d)
	return true
}

// Len returns the number of buffered entries.
func (q *DirectionQueue) Len() int {
	return q.size
}

// Cap returns the fixed capacity.
func (q *DirectionQueue) Cap() int {
	return len(q.slots)
}

// Reset empties the queue without reallocating.
func (q *DirectionQueue) Reset() {
	clear(q.slots)
	q.head, q.tail, q.size = 0, 0, 0
}

// Pending returns the buffered entries in pop order.
func (q *DirectionQueue) Pending() []Direction {
	out := make([]Direction, 0, q.size)
	for i := range q.size {
		out = append(out, q.slots[(q.head+i)%len(q.slots)].dir)
	}
	return out
}
