package macpan

import (
	"fmt"

	"github.com/vovakirdan/tui-macpan/internal/core"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"
)

// Layout
const (
	cellW   = 2 // terminal columns per tile
	hudRows = 2
)

// Visual characters for rendering
const (
	WallChar        = '█'
	ItemChar        = '·'
	PlayerClosed    = 'O'
	ProjectileChar  = '*'
	ProjectileAlt   = '+'
	BorderHoriz     = '─'
	EnemyChar       = 'M'
	EnemyAlt        = 'W'
	EnemyWoundedAlt = 'w'
)

// playerGlyphs holds the open-mouth frame per heading.
var playerGlyphs = map[sim.Direction]rune{
	sim.North: 'V',
	sim.East:  '<',
	sim.South: '^',
	sim.West:  '>',
}

// enemyColors tints enemies by kind.
var enemyColors = [sim.EnemyKinds]core.Color{core.ColorRed, core.ColorMagenta, core.ColorCyan}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start MacPan")
		dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		return
	}

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.world.Snapshot()
	ox, oy := g.origin(dst, snap.Grid)

	g.renderHUD(dst)
	renderWalls(dst, snap.Grid, ox, oy)
	renderItems(dst, snap, ox, oy)
	renderEnemies(dst, snap, ox, oy)
	renderPlayer(dst, snap, ox, oy)
	renderProjectiles(dst, snap, ox, oy)
	g.renderOverlay(dst)
}

// origin returns the screen cell of the playfield's top-left tile.
func (g *Game) origin(dst *core.Screen, grid *sim.TileGrid) (int, int) {
	ox := (dst.Width() - grid.Cols()*cellW) / 2
	return max(ox, 0), hudRows
}

// renderHUD draws lives and score on the left and the map on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, g.hud, core.ColorBrightYellow)

	right := g.mapSource()
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorGray)

	for x := range dst.Width() {
		dst.SetColor(x, 1, BorderHoriz, core.ColorGray)
	}
}

func renderWalls(dst *core.Screen, grid *sim.TileGrid, ox, oy int) {
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if !grid.IsWall(col, row) {
				continue
			}
			for dx := range cellW {
				dst.SetColor(ox+col*cellW+dx, oy+row, WallChar, core.ColorBlue)
			}
		}
	}
}

// pointCell maps a pixel to a screen cell at half-tile horizontal
// resolution.
func pointCell(x, y, tileSize, ox, oy int) (int, int) {
	col := x / tileSize * cellW
	if x%tileSize >= tileSize/2 {
		col++
	}
	return ox + col, oy + y/tileSize
}

// boxCell maps an entity's top-left pixel to the screen cell of the tile it
// mostly covers.
func boxCell(x, y, tileSize, ox, oy int) (int, int) {
	col := (x + tileSize/2) / tileSize
	row := (y + tileSize/2) / tileSize
	return ox + col*cellW, oy + row
}

func renderItems(dst *core.Screen, snap sim.Snapshot, ox, oy int) {
	ts := snap.Grid.TileSize()
	for _, it := range snap.Items {
		x, y := pointCell(it.X, it.Y, ts, ox, oy)
		dst.SetColor(x, y, ItemChar, core.ColorYellow)
	}
}

func renderEnemies(dst *core.Screen, snap sim.Snapshot, ox, oy int) {
	ts := snap.Grid.TileSize()
	for _, e := range snap.Enemies {
		x, y := boxCell(e.X, e.Y, ts, ox, oy)
		glyph := EnemyChar
		if e.Frame%2 == 1 {
			glyph = EnemyAlt
			if e.HitPoints == 1 {
				glyph = EnemyWoundedAlt
			}
		}
		c := enemyColors[e.Kind%sim.EnemyKinds]
		dst.SetColor(x, y, glyph, c)
		dst.SetColor(x+1, y, glyph, c)
	}
}

func renderPlayer(dst *core.Screen, snap sim.Snapshot, ox, oy int) {
	p := snap.Player
	x, y := boxCell(p.X, p.Y, snap.Grid.TileSize(), ox, oy)

	// Mouth closes while pushing against a wall.
	glyph := PlayerClosed
	if !p.Stalled && p.Frame%2 == 0 {
		glyph = playerGlyphs[p.Direction]
	}
	dst.SetColor(x, y, glyph, core.ColorBrightYellow)
	dst.SetColor(x+1, y, ' ', core.ColorBrightYellow)
}

func renderProjectiles(dst *core.Screen, snap sim.Snapshot, ox, oy int) {
	ts := snap.Grid.TileSize()
	for _, pr := range snap.Projectiles {
		x, y := pointCell(pr.X, pr.Y, ts, ox, oy)
		glyph := ProjectileChar
		if pr.Frame%2 == 1 {
			glyph = ProjectileAlt
		}
		dst.SetColor(x, y, glyph, core.ColorBrightRed)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		dst.DrawTextColor(1, dst.Height()-1, "Arrows/WASD turn  Space fire  P pause", core.ColorGray)

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score())
		g.drawCenteredBox(dst, "MAZE CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
