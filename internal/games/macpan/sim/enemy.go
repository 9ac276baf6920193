package sim

// EnemyKinds is the number of distinct enemy kinds.
const EnemyKinds = 3

// Enemy wanders the maze and dies after its hit points run out.
type Enemy struct {
	Entity
	kind      int
	hitPoints int
	dead      bool
}

func newEnemy(w *World, kind, x, y, hitPoints int) *Enemy {
	return &Enemy{
		Entity:    newEntity(w, x, y, Directions[w.rng.Intn(len(Directions))]),
		kind:      kind,
		hitPoints: hitPoints,
	}
}

// Kind returns the cosmetic kind tag in [0, EnemyKinds).
func (e *Enemy) Kind() int { return e.kind }

// HitPoints returns the remaining hit points.
func (e *Enemy) HitPoints() int { return e.hitPoints }

// Alive reports whether the enemy can still be hit.
func (e *Enemy) Alive() bool { return !e.dead }

// Update moves the enemy and, when blocked, draws a new heading from all
// four directions. The draw may repeat the blocked heading.
func (e *Enemy) Update() {
	e.move()
	if e.stalled {
		e.dir = Directions[e.world.rng.Intn(len(Directions))]
	}
}

// Impact takes one hit point away and reports whether this hit killed the
// enemy. A dead enemy ignores further impacts.
func (e *Enemy) Impact() bool {
	if e.dead {
		return false
	}
	e.hitPoints--
	if e.hitPoints > 0 {
		return false
	}
	e.hitPoints = 0
	e.dead = true
	return true
}
