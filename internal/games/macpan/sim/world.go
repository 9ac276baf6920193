package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-macpan/internal/core"
)

// Params holds the tunable simulation constants.
type Params struct {
	EntityStep           int     // pixels per tick for player and enemies
	ItemCount            int     // items placed at world creation
	EnemyMinHP           int     // inclusive
	EnemyMaxHP           int     // inclusive
	EntityAnimRate       float64 // player and enemy frame steps per second
	EntityAnimFrames     int
	ProjectileAnimRate   float64
	ProjectileAnimFrames int
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		EntityStep:           1,
		ItemCount:            50,
		EnemyMinHP:           1,
		EnemyMaxHP:           2,
		EntityAnimRate:       8,
		EntityAnimFrames:     2,
		ProjectileAnimRate:   20,
		ProjectileAnimFrames: 2,
	}
}

// Validate reports the first parameter that cannot drive a world.
func (p Params) Validate() error {
	switch {
	case p.EntityStep <= 0:
		return fmt.Errorf("sim: entity step must be positive, got %d", p.EntityStep)
	case p.ItemCount < 0:
		return fmt.Errorf("sim: item count must not be negative, got %d", p.ItemCount)
	case p.EnemyMinHP < 1:
		return fmt.Errorf("sim: enemy min hp must be at least 1, got %d", p.EnemyMinHP)
	case p.EnemyMaxHP < p.EnemyMinHP:
		return fmt.Errorf("sim: enemy max hp %d below min hp %d", p.EnemyMaxHP, p.EnemyMinHP)
	case p.EntityAnimRate <= 0 || p.ProjectileAnimRate <= 0:
		return fmt.Errorf("sim: animation rates must be positive")
	case p.EntityAnimFrames < 1 || p.ProjectileAnimFrames < 1:
		return fmt.Errorf("sim: animation frame counts must be at least 1")
	}
	return nil
}

// fitsTile reports a step that could skip a wall tile or never line up
// with one. Movement is only checked at the destination, so the fastest
// step (a projectile's) must stay below one tile.
func (p Params) fitsTile(ts int) error {
	switch {
	case ts%p.EntityStep != 0:
		return fmt.Errorf("sim: entity step %d does not divide tile size %d", p.EntityStep, ts)
	case p.EntityStep*ProjectileSpeedFactor >= ts:
		return fmt.Errorf("sim: projectile step %d must be below tile size %d",
			p.EntityStep*ProjectileSpeedFactor, ts)
	}
	return nil
}

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Option customizes a World.
type Option func(*World)

// WithClock sets the clock read by every animation timer.
func WithClock(c Clock) Option {
	return func(w *World) { w.clock = c }
}

// World owns the grid, the player, the enemies, the items and the
// projectiles, and advances them one tick at a time. It is not safe for
// concurrent use.
type World struct {
	grid   *TileGrid
	params Params
	rng    *rand.Rand
	clock  Clock
	bus    *EventBus

	player      *Player
	enemies     []*Enemy
	items       []Point
	projectiles []*Projectile

	tick      uint64
	downed    []*Enemy
	pending   []Event
	respawnHP int
}

// New builds a world on grid. Items are placed first, then one enemy per
// enemy spawn point.
func New(grid *TileGrid, params Params, seed int64, opts ...Option) (*World, error) {
	if grid == nil {
		return nil, fmt.Errorf("sim: nil grid")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := params.fitsTile(grid.TileSize()); err != nil {
		return nil, err
	}

	w := &World{
		grid:   grid,
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
		clock:  time.Now,
		bus:    NewEventBus(),
	}
	for _, opt := range opts {
		opt(w)
	}

	ts := grid.TileSize()
	spawn := grid.PlayerSpawn()
	w.player = newPlayer(w, spawn.Col*ts, spawn.Row*ts)

	w.items = make([]Point, 0, params.ItemCount)
	for range params.ItemCount {
		x, y := grid.RandomFreeCell(w.rng, false)
		w.items = append(w.items, Point{X: x, Y: y})
	}

	for i, t := range grid.enemySpawns {
		w.enemies = append(w.enemies, newEnemy(w, i%EnemyKinds, t.Col*ts, t.Row*ts, w.rollHitPoints()))
	}

	return w, nil
}

func (w *World) rollHitPoints() int {
	return w.params.EnemyMinHP + w.rng.Intn(w.params.EnemyMaxHP-w.params.EnemyMinHP+1)
}

// Bus returns the event bus listeners register on.
func (w *World) Bus() *EventBus { return w.bus }

// Grid returns the immutable tile grid.
func (w *World) Grid() *TileGrid { return w.grid }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Enemies returns the live enemy collection. Callers must not modify it.
func (w *World) Enemies() []*Enemy { return w.enemies }

// Items returns a copy of the remaining item positions.
func (w *World) Items() []Point {
	out := make([]Point, len(w.items))
	copy(out, w.items)
	return out
}

// Projectiles returns the in-flight projectiles in fire order. Callers must
// not modify the slice.
func (w *World) Projectiles() []*Projectile { return w.projectiles }

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 { return w.tick }

// RequestTurn forwards a turn request to the player.
func (w *World) RequestTurn(d Direction) { w.player.RequestTurn(d) }

// FireProjectile launches a projectile from the player's center along the
// player's heading.
func (w *World) FireProjectile() {
	cx, cy := w.player.box.Center()
	w.projectiles = append(w.projectiles, newProjectile(w, cx, cy, w.player.dir))
}

// SetRespawnBonus adds extra hit points to every enemy spawned from now on
// to replace a killed one. Negative values count as zero.
func (w *World) SetRespawnBonus(hp int) {
	w.respawnHP = max(hp, 0)
}

// RespawnPlayer warps the player to a random tile-aligned free cell and
// drops any pending turn.
func (w *World) RespawnPlayer() {
	x, y := w.grid.RandomFreeCell(w.rng, true)
	w.player.Warp(x, y)
	w.player.hasPending = false
	w.player.stalled = false
}

// Step advances the simulation by one tick. Every mover updates in
// Movers order, so the player turns, moves, eats and checks enemy contact
// before any enemy moves. Projectiles then move and resolve impacts,
// downed enemies are replaced and the tick's events reach the listeners.
// The first listener error is returned.
func (w *World) Step() error {
	w.tick++

	advance(w.Movers())

	w.stepProjectiles()
	w.replaceDowned()

	return w.dispatch()
}

// advance updates every mover in order.
func advance[M Mover](ms []M) {
	for _, m := range ms {
		m.Update()
	}
}

// Movers returns the player followed by the enemies.
func (w *World) Movers() []Mover {
	out := make([]Mover, 0, len(w.enemies)+1)
	out = append(out, w.player)
	for _, e := range w.enemies {
		out = append(out, e)
	}
	return out
}

// stepProjectiles moves projectiles in fire order. The first one to hit
// something is removed and ends the phase for this tick.
func (w *World) stepProjectiles() {
	for i, p := range w.projectiles {
		p.Update()
		if p.ResolveImpact() != ImpactNone {
			w.projectiles = append(w.projectiles[:i], w.projectiles[i+1:]...)
			return
		}
	}
}

// enemyDown queues a killed enemy for replacement after the projectile
// phase.
func (w *World) enemyDown(e *Enemy) {
	w.downed = append(w.downed, e)
}

// replaceDowned swaps every killed enemy for a fresh one at a random
// tile-aligned free cell, keeping the population constant.
func (w *World) replaceDowned() {
	if len(w.downed) == 0 {
		return
	}
	kept := make([]*Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	for range w.downed {
		x, y := w.grid.RandomFreeCell(w.rng, true)
		kept = append(kept, newEnemy(w, w.rng.Intn(EnemyKinds), x, y, w.rollHitPoints()+w.respawnHP))
	}
	w.enemies = kept
	w.downed = w.downed[:0]
}

// collectItem removes the first item strictly inside box and reports
// whether one was found.
func (w *World) collectItem(box core.Rect) bool {
	for i, it := range w.items {
		if box.Contains(it.X, it.Y) {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) emit(ev Event) {
	ev.Tick = w.tick
	w.pending = append(w.pending, ev)
}

func (w *World) dispatch() error {
	events := w.pending
	w.pending = nil
	for _, ev := range events {
		if err := w.bus.Fire(ev); err != nil {
			return err
		}
	}
	return nil
}
