package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	tileWidth = 2 // Terminal cells are about twice as tall as wide
	hudHeight = 2
)

var wallGlyphs = map[WallKind]string{
	WallHorizontal:  "══",
	WallLeft:        "║ ",
	WallRight:       " ║",
	WallTopLeft:     "╔═",
	WallTopRight:    "═╗",
	WallBottomLeft:  "╚═",
	WallBottomRight: "═╝",
}

var spriteGlyphs = map[Sprite]string{
	SpriteHeadUp:     "▲ ",
	SpriteHeadDown:   "▼ ",
	SpriteHeadLeft:   "◀━",
	SpriteHeadRight:  "▶ ",
	SpriteVertical:   "┃ ",
	SpriteHorizontal: "━━",
	SpriteUpRight:    "┗━",
	SpriteUpLeft:     "┛ ",
	SpriteDownRight:  "┏━",
	SpriteDownLeft:   "┓ ",
	SpriteEndUp:      "╹ ",
	SpriteEndDown:    "╻ ",
	SpriteEndLeft:    "╸ ",
	SpriteEndRight:   "╺━",
}

// Shown for segments stacked on their neighbour right after growing.
const stackedGlyph = "■ "

var deathGlyphs = []string{"✖ ", "× ", "· "}

const appleGlyph = "● "

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWalls(dst)
	g.drawTile(dst, g.sim.Apple(), appleGlyph, core.ColorBrightRed)
	g.renderSnake(dst)

	switch {
	case g.sim.State() == StateGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Apples: %d", g.sim.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake · Apples: %d  Length: %d  Speed: %dms",
		g.sim.Score(), g.sim.Snake().Len(), g.sim.Interval().Milliseconds())
	if g.preset != "" && g.preset != config.DifficultyNormal {
		hud += fmt.Sprintf("  [%s]", g.preset)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderWalls(dst *core.Screen) {
	grid := g.sim.Grid()
	for _, w := range g.sim.Walls() {
		g.drawTile(dst, w, wallGlyphs[grid.WallKind(w)], core.ColorGray)
	}
}

// renderSnake draws the body tail first so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen) {
	snake := g.sim.Snake()
	segments := snake.Segments()

	if g.sim.State() == StateGameOver {
		glyph := deathGlyphs[min(g.sim.DeathFrame(), len(deathGlyphs)-1)]
		for i := len(segments) - 1; i >= 0; i-- {
			g.drawTile(dst, segments[i], glyph, core.ColorRed)
		}
		return
	}

	sprites := BodySprites(snake.Head, segments)
	for i := len(segments) - 1; i >= 0; i-- {
		glyph, ok := spriteGlyphs[sprites[i]]
		if !ok {
			glyph = stackedGlyph
		}
		g.drawTile(dst, segments[i], glyph, core.ColorGreen)
	}
	g.drawTile(dst, snake.Head, spriteGlyphs[HeadSprite(snake.Heading)], core.ColorBrightGreen)
}

// drawTile writes a two-cell glyph at grid position p.
func (g *Game) drawTile(dst *core.Screen, p core.Point, glyph string, c core.Color) {
	dst.DrawTextColor(g.offsetX+p.X*tileWidth, g.offsetY+p.Y, glyph, c)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	g.drawCenteredText(dst, line1, box.Y+1)
	g.drawCenteredText(dst, line2, box.Y+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	dst.DrawTextCentered(y, text)
}
