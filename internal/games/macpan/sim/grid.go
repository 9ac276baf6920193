package sim

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-macpan/internal/core"
)

// Map characters.
const (
	WallChar        = '#'
	EnemySpawnChar  = '.'
	PlayerSpawnChar = '$'
)

// MapFormatError reports a map that cannot be turned into a playable grid.
type MapFormatError struct {
	Line   int // 1-based line number, 0 when the problem is not tied to a line
	Reason string
}

func (e *MapFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("map format: line %d: %s", e.Line, e.Reason)
	}
	return "map format: " + e.Reason
}

// Tile is an integer (column, row) grid coordinate.
type Tile struct {
	Col, Row int
}

// TileGrid is the immutable wall occupancy of the playfield.
// Cells are stored in row-major order: index = row*cols + col.
type TileGrid struct {
	cols        int
	rows        int
	tileSize    int
	walls       []bool
	playerSpawn Tile
	enemySpawns []Tile
}

// LoadString parses map text. See Load.
func LoadString(text string, tileSize int) (*TileGrid, error) {
	return Load(strings.NewReader(text), tileSize)
}

// Load parses a plain-text map row by row: '#' is a wall, '.' an enemy
// spawn, '$' the single player spawn, anything else free floor. Rows shorter
// than the widest one are padded with free floor. Trailing blank lines are
// ignored.
func Load(r io.Reader, tileSize int) (*TileGrid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("sim: tile size must be positive, got %d", tileSize)
	}

	var lines [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, []rune(strings.TrimRight(scanner.Text(), "\r\n")))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sim: read map: %w", err)
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}
	if len(lines) == 0 || cols == 0 {
		return nil, &MapFormatError{Reason: "map is empty"}
	}

	g := &TileGrid{
		cols:     cols,
		rows:     len(lines),
		tileSize: tileSize,
		walls:    make([]bool, cols*len(lines)),
	}

	foundPlayer := false
	for row, line := range lines {
		for col, ch := range line {
			switch ch {
			case WallChar:
				g.walls[row*cols+col] = true
			case EnemySpawnChar:
				g.enemySpawns = append(g.enemySpawns, Tile{Col: col, Row: row})
			case PlayerSpawnChar:
				if foundPlayer {
					return nil, &MapFormatError{Line: row + 1, Reason: "more than one player spawn ($)"}
				}
				foundPlayer = true
				g.playerSpawn = Tile{Col: col, Row: row}
			}
		}
	}
	if !foundPlayer {
		return nil, &MapFormatError{Reason: "no player spawn ($)"}
	}

	return g, nil
}

// Cols returns the grid width in tiles.
func (g *TileGrid) Cols() int { return g.cols }

// Rows returns the grid height in tiles.
func (g *TileGrid) Rows() int { return g.rows }

// TileSize returns the edge length of a tile in pixels.
func (g *TileGrid) TileSize() int { return g.tileSize }

// Width returns the playfield width in pixels.
func (g *TileGrid) Width() int { return g.cols * g.tileSize }

// Height returns the playfield height in pixels.
func (g *TileGrid) Height() int { return g.rows * g.tileSize }

// PlayerSpawn returns the tile marked '$'.
func (g *TileGrid) PlayerSpawn() Tile { return g.playerSpawn }

// EnemySpawns returns the tiles marked '.', in reading order.
func (g *TileGrid) EnemySpawns() []Tile {
	out := make([]Tile, len(g.enemySpawns))
	copy(out, g.enemySpawns)
	return out
}

// InBounds reports whether (col, row) is a grid cell.
func (g *TileGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// IsWall reports whether the cell holds a wall. Callers must keep
// coordinates in bounds; an out-of-bounds query panics.
func (g *TileGrid) IsWall(col, row int) bool {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("sim: tile (%d, %d) outside %dx%d grid", col, row, g.cols, g.rows))
	}
	return g.walls[row*g.cols+col]
}

// IsWallAt reports whether the pixel (x, y) lies in a wall tile. Pixels
// outside the playfield panic like IsWall.
func (g *TileGrid) IsWallAt(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
		panic(fmt.Sprintf("sim: pixel (%d, %d) outside %dx%d playfield", x, y, g.Width(), g.Height()))
	}
	return g.IsWall(x/g.tileSize, y/g.tileSize)
}

// HitsWall samples the four corners of box and reports whether any lies in
// a wall tile. Exact for boxes up to one tile; a larger box can straddle a
// wall that none of its corners touch.
func (g *TileGrid) HitsWall(box core.Rect) bool {
	for _, c := range box.Corners() {
		if g.IsWallAt(c[0], c[1]) {
			return true
		}
	}
	return false
}

// RandomFreeCell draws random playfield positions until one lands outside
// a wall. With tileAligned the result is a tile's top-left pixel; otherwise
// it is any pixel. The '$' tile is never a wall, so the loop terminates.
func (g *TileGrid) RandomFreeCell(rng *rand.Rand, tileAligned bool) (int, int) {
	for {
		var x, y int
		if tileAligned {
			x = rng.Intn(g.cols) * g.tileSize
			y = rng.Intn(g.rows) * g.tileSize
		} else {
			x = rng.Intn(g.Width())
			y = rng.Intn(g.Height())
		}
		if !g.IsWallAt(x, y) {
			return x, y
		}
	}
}
