package snake

import (
	"slices"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewDirectionQueue(10)
	q.Push(DirUp)
	q.Push(DirLeft)
	q.Push(DirDown)

	for _, want := range []Direction{DirUp, DirLeft, DirDown} {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() on non-empty queue returned ok=false")
		}
		if got != want {
			t.Errorf("Pop() = %v, want %v", got, want)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue returned ok=true")
	}
}

func TestQueueOverwritesOldest(t *testing.T) {
	q := NewDirectionQueue(10)
	for i := 1; i <= 11; i++ {
		q.Push(Direction(i))
	}

	if q.Len() != 10 {
		t.Fatalf("Len() = %d after overflow, want 10", q.Len())
	}
	for want := 2; want <= 11; want++ {
		got, ok := q.Pop()
		if !ok || got != Direction(want) {
			t.Fatalf("Pop() = %v, %v; want %v, true", got, ok, Direction(want))
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after draining, want 0", q.Len())
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := NewDirectionQueue(3)
	q.Push(DirUp)
	q.Push(DirLeft)
	q.Pop()
	q.Push(DirDown)
	q.Push(DirRight)
	q.Push(DirUp) // full: drops DirLeft

	want := []Direction{DirDown, DirRight, DirUp}
	if got := q.Pending(); !slices.Equal(got, want) {
		t.Errorf("Pending() = %v, want %v", got, want)
	}
}

func TestQueuePeekDoesNotConsume(t *testing.T) {
	q := NewDirectionQueue(4)
	if _, ok := q.Peek(); ok {
		t.Error("Peek() on empty queue returned ok=true")
	}

	q.Push(DirDown)
	q.Push(DirLeft)
	for range 3 {
		if d, ok := q.Peek(); !ok || d != DirDown {
			t.Errorf("Peek() = %v, %v; want down, true", d, ok)
		}
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d after Peek, want 2", q.Len())
	}
}

func TestQueueOffer(t *testing.T) {
	tests := []struct {
		name    string
		pending []Direction
		offer   Direction
		want    bool
	}{
		{"empty queue accepts anything", nil, DirLeft, true},
		{"repeat of next pending", []Direction{DirUp}, DirUp, false},
		{"reversal of next pending", []Direction{DirUp}, DirDown, false},
		{"perpendicular to next pending", []Direction{DirUp}, DirLeft, true},
		{"checks the oldest entry", []Direction{DirUp, DirLeft}, DirRight, true},
		{"oldest entry on same axis", []Direction{DirUp, DirLeft}, DirDown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewDirectionQueue(10)
			for _, d := range tt.pending {
				q.Push(d)
			}
			if got := q.Offer(tt.offer); got != tt.want {
				t.Errorf("Offer(%v) = %v, want %v", tt.offer, got, tt.want)
			}
			wantLen := len(tt.pending)
			if tt.want {
				wantLen++
			}
			if q.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", q.Len(), wantLen)
			}
		})
	}
}

func TestQueueUpThenLeft(t *testing.T) {
	q := NewDirectionQueue(10)
	if !q.Offer(DirUp) || !q.Offer(DirLeft) {
		t.Fatalf("expected both Up and Left to be queued")
	}
	want := []Direction{DirUp, DirLeft}
	if got := q.Pending(); !slices.Equal(got, want) {
		t.Errorf("Pending() = %v, want %v", got, want)
	}
}

func TestQueueReset(t *testing.T) {
	q := NewDirectionQueue(0)
	if q.Cap() != DefaultQueueCapacity {
		t.Errorf("Cap() = %d, want %d", q.Cap(), DefaultQueueCapacity)
	}
	q.Push(DirUp)
	q.Push(DirLeft)
	q.Reset()

	if q.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() after Reset returned ok=true")
	}
	q.Push(DirDown)
	if d, _ := q.Peek(); d != DirDown {
		t.Errorf("Peek() = %v after Reset and Push, want down", d)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if sum := d.Delta().Add(d.Opposite().Delta()); sum.X != 0 || sum.Y != 0 {
			t.Errorf("%v deltas do not cancel: %v", d, sum)
		}
	}
}
