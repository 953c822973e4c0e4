package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

func TestSnakeStartLayout(t *testing.T) {
	s := NewSnake(pt(11, 11), DirRight, DefaultTailLength)

	want := []core.Point{pt(10, 11), pt(9, 11), pt(8, 11)}
	if got := s.Segments(); !slices.Equal(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSnakeAdvanceScenario(t *testing.T) {
	s := NewSnake(pt(11, 11), DirRight, 3)
	s.Advance()

	if s.Head != pt(12, 11) {
		t.Errorf("Head = %v, want (12,11)", s.Head)
	}
	want := []core.Point{pt(11, 11), pt(10, 11), pt(9, 11)}
	if got := s.Segments(); !slices.Equal(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestChainPropagation(t *testing.T) {
	for k := 0; k <= 6; k++ {
		s := NewSnake(pt(10, 10), DirRight, k)
		s.Heading = DirDown

		before := s.Positions()
		s.Advance()
		after := s.Positions()

		if after[0] != before[0].Add(DirDown.Delta()) {
			t.Errorf("k=%d: head = %v, want %v", k, after[0], before[0].Add(DirDown.Delta()))
		}
		for i := 1; i < len(after); i++ {
			if after[i] != before[i-1] {
				t.Errorf("k=%d: segment %d = %v, want %v", k, i-1, after[i], before[i-1])
			}
		}
	}
}

func TestSnakeGrowCoLocated(t *testing.T) {
	s := NewSnake(pt(11, 11), DirRight, 3)
	s.Grow()

	segs := s.Segments()
	if len(segs) != 4 {
		t.Fatalf("len(Segments()) = %d after Grow, want 4", len(segs))
	}
	if segs[3] != segs[2] {
		t.Errorf("new segment at %v, want on top of %v", segs[3], segs[2])
	}

	s.Advance()
	want := []core.Point{pt(11, 11), pt(10, 11), pt(9, 11), pt(8, 11)}
	if got := s.Segments(); !slices.Equal(got, want) {
		t.Errorf("Segments() after Advance = %v, want %v", got, want)
	}
}

func TestSnakeGrowEmptyChain(t *testing.T) {
	s := NewSnake(pt(5, 5), DirUp, 0)
	s.Grow()
	if got := s.Segment(0); got != pt(5, 5) {
		t.Errorf("first segment at %v, want on the head (5,5)", got)
	}

	s.Advance()
	if s.Head != pt(5, 4) || s.Segment(0) != pt(5, 5) {
		t.Errorf("after Advance head=%v seg=%v, want (5,4) and (5,5)", s.Head, s.Segment(0))
	}
}

func TestSnakeResetReleasesChain(t *testing.T) {
	s := NewSnake(pt(11, 11), DirRight, 3)
	s.Grow()
	s.Grow()
	s.Reset(pt(4, 4), DirUp, 2)

	if s.arena.Live() != 2 {
		t.Errorf("arena holds %d live segments, want 2", s.arena.Live())
	}
	want := []core.Point{pt(4, 5), pt(4, 6)}
	if got := s.Segments(); !slices.Equal(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestArenaReusesReleasedSlots(t *testing.T) {
	var a segmentArena
	first := a.Spawn(pt(1, 1))
	a.Spawn(pt(2, 2))
	a.Release(first)

	reused := a.Spawn(pt(3, 3))
	if reused != first {
		t.Errorf("Spawn() = %d, want released id %d", reused, first)
	}
	if a.Position(reused) != pt(3, 3) {
		t.Errorf("Position() = %v, want (3,3)", a.Position(reused))
	}
	if a.Live() != 2 {
		t.Errorf("Live() = %d, want 2", a.Live())
	}
}

func TestArenaPanicsOnDeadSegment(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *segmentArena, id SegmentID)
	}{
		{"position of released", func(a *segmentArena, id SegmentID) { a.Position(id) }},
		{"move released", func(a *segmentArena, id SegmentID) { a.Move(id, pt(0, 0)) }},
		{"release twice", func(a *segmentArena, id SegmentID) { a.Release(id) }},
		{"unknown id", func(a *segmentArena, _ SegmentID) { a.Position(42) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a segmentArena
			id := a.Spawn(pt(1, 1))
			a.Release(id)

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.run(&a, id)
		})
	}
}
