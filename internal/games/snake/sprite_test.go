package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSegmentSprite(t *testing.T) {
	cur := pt(5, 5)
	up, down, left, right := pt(5, 4), pt(5, 6), pt(4, 5), pt(6, 5)

	tests := []struct {
		name       string
		prev, next core.Point
		want       Sprite
	}{
		{"vertical", up, down, SpriteVertical},
		{"vertical reversed", down, up, SpriteVertical},
		{"horizontal", left, right, SpriteHorizontal},
		{"up right", up, right, SpriteUpRight},
		{"right up", right, up, SpriteUpRight},
		{"up left", left, up, SpriteUpLeft},
		{"down right", down, right, SpriteDownRight},
		{"down left", left, down, SpriteDownLeft},
		{"stacked neighbour", up, cur, SpriteNone},
		{"gap", pt(5, 3), down, SpriteNone},
		{"diagonal", pt(6, 6), up, SpriteNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentSprite(tt.prev, cur, tt.next); got != tt.want {
				t.Errorf("SegmentSprite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTailEndSprite(t *testing.T) {
	cur := pt(5, 5)
	tests := []struct {
		prev core.Point
		want Sprite
	}{
		{pt(5, 4), SpriteEndUp},
		{pt(5, 6), SpriteEndDown},
		{pt(4, 5), SpriteEndLeft},
		{pt(6, 5), SpriteEndRight},
		{cur, SpriteNone},
	}
	for _, tt := range tests {
		if got := TailEndSprite(tt.prev, cur); got != tt.want {
			t.Errorf("TailEndSprite(%v) = %v, want %v", tt.prev, got, tt.want)
		}
	}
}

func TestHeadSprite(t *testing.T) {
	want := map[Direction]Sprite{
		DirUp:    SpriteHeadUp,
		DirDown:  SpriteHeadDown,
		DirLeft:  SpriteHeadLeft,
		DirRight: SpriteHeadRight,
	}
	for d, w := range want {
		if got := HeadSprite(d); got != w {
			t.Errorf("HeadSprite(%v) = %v, want %v", d, got, w)
		}
	}
}

func TestBodySprites(t *testing.T) {
	// Head at (11,11) coming from the left, body turning down at (9,11).
	head := pt(11, 11)
	segments := []core.Point{pt(10, 11), pt(9, 11), pt(9, 12)}

	want := []Sprite{SpriteHorizontal, SpriteDownRight, SpriteEndUp}
	if got := BodySprites(head, segments); !slices.Equal(got, want) {
		t.Errorf("BodySprites() = %v, want %v", got, want)
	}

	if got := BodySprites(head, nil); len(got) != 0 {
		t.Errorf("BodySprites() for empty chain = %v, want empty", got)
	}
}
