package maze

import (
	"fmt"

	"github.com/ayudkin/tui-maze/internal/core"
)

// Glyphs for the map layer.
const (
	glyphWall        = '#'
	glyphExit        = 'E'
	glyphCollectible = '*'
	glyphObstacle    = 'X'
	glyphPlayer      = '@'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "No levels loaded"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Cannot start", msg)
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderEntities(dst)

	p := g.session.Player()
	switch {
	case g.session.State() == StateVictory:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", p.Score))
	case g.session.State() == StateGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.session.State() == StateLevelCleared:
		g.renderOverlay(dst,
			fmt.Sprintf("Level %d cleared!", g.session.LevelIndex()+1),
			"Press Enter to continue")
	case g.session.State() == StateLifeLost:
		g.renderOverlay(dst, "Life Lost!", fmt.Sprintf("Lives left: %d", p.Lives))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and a separator line.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.session.Player()
	hud := fmt.Sprintf(" Maze Quest — %s  Score: %d  Lives: %d  Level: %d/%d  Time: %.0f",
		g.session.Level().Name,
		p.Score, p.Lives,
		g.session.LevelIndex()+1, g.session.LevelCount(),
		g.session.RemainingSeconds())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws the static maze layer: walls and the exit.
func (g *Game) renderMap(dst *core.Screen) {
	board := g.session.Board()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			p := core.Point{X: x, Y: y}
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			switch board.CellAt(p) {
			case Wall:
				dst.SetColored(sx, sy, glyphWall, core.ColorGray)
			case Exit:
				dst.SetColored(sx, sy, glyphExit, core.ColorBrightGreen)
			}
		}
	}
}

// renderEntities draws collectibles, obstacles and the player, in that
// order so the player is always on top.
func (g *Game) renderEntities(dst *core.Screen) {
	board := g.session.Board()
	overlay := g.session.Overlay()

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			p := core.Point{X: x, Y: y}
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			if overlay.CollectibleAt(p) {
				dst.SetColored(sx, sy, glyphCollectible, core.ColorBrightYellow)
			}
			if overlay.ObstacleAt(p) {
				dst.SetColored(sx, sy, glyphObstacle, core.ColorBrightRed)
			}
		}
	}

	pos := g.session.Player().Pos
	dst.SetColored(g.mapOffsetX+pos.X, g.mapOffsetY+pos.Y, glyphPlayer, core.ColorBrightBlue)
}

// renderOverlay draws a centered two-line message in a box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
