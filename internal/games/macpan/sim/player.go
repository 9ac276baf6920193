package sim

// Player is the entity steered by input. It eats items and holds the
// queued turn.
type Player struct {
	Entity
	score       int
	pendingTurn Direction
	hasPending  bool
}

func newPlayer(w *World, x, y int) *Player {
	return &Player{
		Entity: newEntity(w, x, y, West),
	}
}

// Score returns the number of items eaten.
func (p *Player) Score() int { return p.score }

// PendingTurn returns the buffered turn, if any.
func (p *Player) PendingTurn() (Direction, bool) {
	return p.pendingTurn, p.hasPending
}

// RequestTurn turns at once when the new heading is clear, otherwise keeps
// it as the single pending turn, replacing any older one.
func (p *Player) RequestTurn(d Direction) {
	if p.CanTurn(d) {
		p.dir = d
		p.hasPending = false
		return
	}
	p.pendingTurn = d
	p.hasPending = true
}

// retryTurn applies the pending turn once it has become legal.
func (p *Player) retryTurn() {
	if p.hasPending && p.CanTurn(p.pendingTurn) {
		p.dir = p.pendingTurn
		p.hasPending = false
	}
}

// Update retries the pending turn, moves the player, eats at most one
// item under its box and finally checks for enemy contact.
func (p *Player) Update() {
	p.retryTurn()
	p.move()
	if p.world.collectItem(p.box) {
		p.score++
		p.world.emit(Event{Kind: EventItemCollected, Player: p})
	}
	p.CheckEnemyCollision()
}

// CheckEnemyCollision reports whether the player's box overlaps a live
// enemy and raises EventPlayerHit for the first one found. The enemy is
// left in place.
func (p *Player) CheckEnemyCollision() bool {
	for _, e := range p.world.enemies {
		if e.Alive() && e.box.Intersects(p.box) {
			p.world.emit(Event{Kind: EventPlayerHit, Player: p, Enemy: e})
			return true
		}
	}
	return false
}
