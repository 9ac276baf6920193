package sim

import (
	"github.com/vovakirdan/tui-macpan/internal/core"
)

// ProjectileSpeedFactor is the projectile step relative to the entity step.
const ProjectileSpeedFactor = 3

// Impact is the outcome of a projectile's impact check.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactWall
	ImpactEnemy
)

func (i Impact) String() string {
	switch i {
	case ImpactNone:
		return "none"
	case ImpactWall:
		return "wall"
	case ImpactEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Projectile is a point travelling in a straight line until it hits a wall,
// the playfield edge or an enemy.
type Projectile struct {
	world  *World
	x, y   int
	dir    Direction
	anim   *Timer
	atEdge bool
}

func newProjectile(w *World, x, y int, dir Direction) *Projectile {
	return &Projectile{
		world: w,
		x:     core.Clamp(x, 0, w.grid.Width()-1),
		y:     core.Clamp(y, 0, w.grid.Height()-1),
		dir:   dir,
		anim:  NewTimer(w.params.ProjectileAnimRate, w.params.ProjectileAnimFrames, w.clock),
	}
}

// Position returns the projectile's pixel position.
func (p *Projectile) Position() (int, int) { return p.x, p.y }

// Direction returns the travel direction.
func (p *Projectile) Direction() Direction { return p.dir }

// Box returns a one-pixel box at the projectile's position.
func (p *Projectile) Box() core.Rect { return core.NewRect(p.x, p.y, 1, 1) }

// Update moves the projectile ProjectileSpeedFactor entity steps forward.
// A step past the playfield edge stops at the last pixel.
func (p *Projectile) Update() {
	g := p.world.grid
	n := p.world.params.EntityStep * ProjectileSpeedFactor
	dx, dy := p.dir.Delta()
	x, y := stepClamped(p.x, p.y, p.dir, n, g.Width()-1, g.Height()-1)
	p.atEdge = x != p.x+dx*n || y != p.y+dy*n
	p.x, p.y = x, y
}

// ResolveImpact checks, in order, the wall under the projectile and the
// live enemies. Only the first enemy containing the point is hit; a lethal
// hit queues the enemy's removal and respawn with the world.
func (p *Projectile) ResolveImpact() Impact {
	if p.atEdge || p.world.grid.IsWallAt(p.x, p.y) {
		return ImpactWall
	}
	for _, e := range p.world.enemies {
		if !e.Alive() || !e.box.Contains(p.x, p.y) {
			continue
		}
		if e.Impact() {
			p.world.enemyDown(e)
		}
		return ImpactEnemy
	}
	return ImpactNone
}
