package sim

import (
	"github.com/vovakirdan/tui-macpan/internal/core"
)

// Direction is one of the four cardinal headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every heading, indexable by a random draw.
var Directions = [...]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the direction in screen coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// stepClamped moves (x, y) by n pixels along d and clamps the result to
// [0, maxX] × [0, maxY].
func stepClamped(x, y int, d Direction, n, maxX, maxY int) (int, int) {
	dx, dy := d.Delta()
	return core.Clamp(x+dx*n, 0, maxX), core.Clamp(y+dy*n, 0, maxY)
}

// Mover is anything the world advances once per tick.
type Mover interface {
	Update()
	Box() core.Rect
}

// Entity is the shared movement and collision unit of the player and the
// enemies: a one-tile box, a heading and the stalled flag.
type Entity struct {
	world   *World
	box     core.Rect
	dir     Direction
	stalled bool
	anim    *Timer
}

func newEntity(w *World, x, y int, dir Direction) Entity {
	ts := w.grid.TileSize()
	e := Entity{
		world: w,
		box:   core.NewRect(0, 0, ts, ts),
		dir:   dir,
		anim:  NewTimer(w.params.EntityAnimRate, w.params.EntityAnimFrames, w.clock),
	}
	e.Warp(x, y)
	return e
}

// Box returns the entity's bounding box in pixels.
func (e *Entity) Box() core.Rect { return e.box }

// Position returns the top-left pixel of the entity.
func (e *Entity) Position() (int, int) { return e.box.X, e.box.Y }

// Direction returns the current heading.
func (e *Entity) Direction() Direction { return e.dir }

// Stalled reports whether the last movement attempt made no progress.
func (e *Entity) Stalled() bool { return e.stalled }

// Warp places the entity at (x, y), clamped to the playfield.
func (e *Entity) Warp(x, y int) {
	maxX, maxY := e.limits()
	e.box = e.box.MovedTo(core.Clamp(x, 0, maxX), core.Clamp(y, 0, maxY))
}

// limits returns the largest top-left coordinates that keep the whole box
// on the playfield.
func (e *Entity) limits() (int, int) {
	g := e.world.grid
	return g.Width() - e.box.W, g.Height() - e.box.H
}

// candidate returns the box one step along d from the current position.
func (e *Entity) candidate(d Direction) core.Rect {
	maxX, maxY := e.limits()
	x, y := stepClamped(e.box.X, e.box.Y, d, e.world.params.EntityStep, maxX, maxY)
	return e.box.MovedTo(x, y)
}

// CanTurn reports whether one step along d from the current position stays
// clear of walls.
func (e *Entity) CanTurn(d Direction) bool {
	return !e.world.grid.HitsWall(e.candidate(d))
}

// move advances one step along the current heading. A step into a wall is
// rolled back. Both a rollback and a step pinned at the playfield edge leave
// the entity stalled.
func (e *Entity) move() {
	prev := e.box
	e.box = e.candidate(e.dir)
	if e.world.grid.HitsWall(e.box) {
		e.box = prev
	}
	e.stalled = e.box == prev
}
