package sim

// PlayerView is the render-side view of the player.
type PlayerView struct {
	X, Y      int
	Direction Direction
	Stalled   bool
	Frame     int
	Pending   bool
}

// EnemyView is the render-side view of one enemy.
type EnemyView struct {
	X, Y      int
	Kind      int
	HitPoints int
	Direction Direction
	Frame     int
}

// ProjectileView is the render-side view of one projectile.
type ProjectileView struct {
	X, Y      int
	Direction Direction
	Frame     int
}

// Snapshot is a read-only copy of everything a drawing layer needs for one
// frame. It shares no memory with the World.
type Snapshot struct {
	Tick        uint64
	Grid        *TileGrid // immutable, safe to share
	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Items       []Point
	Score       int
}

// Snapshot captures the world state. Reading a snapshot advances the
// animation timers, so call it once per rendered frame.
func (w *World) Snapshot() Snapshot {
	p := w.player
	s := Snapshot{
		Tick: w.tick,
		Grid: w.grid,
		Player: PlayerView{
			X:         p.box.X,
			Y:         p.box.Y,
			Direction: p.dir,
			Stalled:   p.stalled,
			Frame:     p.anim.Hit(),
			Pending:   p.hasPending,
		},
		Enemies:     make([]EnemyView, 0, len(w.enemies)),
		Projectiles: make([]ProjectileView, 0, len(w.projectiles)),
		Items:       w.Items(),
		Score:       p.score,
	}
	for _, e := range w.enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			X:         e.box.X,
			Y:         e.box.Y,
			Kind:      e.kind,
			HitPoints: e.hitPoints,
			Direction: e.dir,
			Frame:     e.anim.Hit(),
		})
	}
	for _, pr := range w.projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			X:         pr.x,
			Y:         pr.y,
			Direction: pr.dir,
			Frame:     pr.anim.Hit(),
		})
	}
	return s
}
