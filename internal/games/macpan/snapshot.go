package macpan

import "github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	sim.Snapshot
	Lives int
	State string
}

// Snapshot returns the current game snapshot. Like sim.World.Snapshot it
// advances animation timers.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Lives: g.lives, State: g.state}
	if g.world != nil {
		s.Snapshot = g.world.Snapshot()
	}
	return s
}
