// Package macpan is the game-state layer around the sim core: lives, game
// over and win detection, input verbs, difficulty progression and terminal
// rendering of world snapshots.
package macpan

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-macpan/internal/config"
	"github.com/vovakirdan/tui-macpan/internal/core"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan/maps"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"
	"github.com/vovakirdan/tui-macpan/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateWin      = "win"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// mapOverride replaces every variant's map when set via CLI
var mapOverride string

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetMapPath makes every variant play the given map name or file.
func SetMapPath(path string) {
	mapOverride = path
}

// SetLogger routes game logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix("macpan")
}

// Game implements registry.Game for one maze variant.
type Game struct {
	id      string
	title   string
	mapName string

	runtime    core.RuntimeConfig
	cfg        config.MacPanConfig
	difficulty *config.DifficultyManager
	clock      sim.Clock // nil means wall clock

	world   *sim.World
	lives   int
	state   string
	hud     string
	loadErr error

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates the classic MacPan game.
func New() *Game {
	return &Game{id: "macpan", title: "MacPan", mapName: "classic"}
}

// NewArena creates MacPan on the open arena map.
func NewArena() *Game {
	return &Game{id: "macpan_arena", title: "MacPan (Arena)", mapName: "arena"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = nil
	g.loadErr = nil
	g.state = StatePlaying

	cfg, err := config.LoadMacPan(configPath)
	if err != nil {
		logger.Warn("config unavailable, using defaults", "error", err)
		cfg = config.DefaultMacPanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMacPanPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.lives = cfg.Player.Lives

	if err := cfg.Validate(); err != nil {
		g.fail(err)
		return
	}

	grid, err := maps.Resolve(g.mapSource(), cfg.Playfield.TileSize)
	if err != nil {
		g.fail(err)
		return
	}

	var opts []sim.Option
	if g.clock != nil {
		opts = append(opts, sim.WithClock(g.clock))
	}
	world, err := sim.New(grid, ParamsFromConfig(cfg), runtime.Seed, opts...)
	if err != nil {
		g.fail(err)
		return
	}
	g.world = world

	world.Bus().Register(sim.EventItemCollected, g.onItemCollected)
	world.Bus().Register(sim.EventPlayerHit, g.onPlayerHit)

	// One terminal row per tile, two columns per tile, plus HUD and status rows.
	g.minScreenW = grid.Cols() * cellW
	g.minScreenH = grid.Rows() + hudRows + 1
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.refreshHUD()
	logger.Debug("round started", "game", g.id, "map", g.mapSource(),
		"enemies", len(world.Enemies()), "items", len(world.Items()), "seed", runtime.Seed)
}

// Resize records a new terminal size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

func (g *Game) mapSource() string {
	switch {
	case mapOverride != "":
		return mapOverride
	case g.cfg.Playfield.Map != "":
		return g.cfg.Playfield.Map
	default:
		return g.mapName
	}
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.state = StateGameOver
	logger.Error("cannot start round", "game", g.id, "error", err)
}

// MapName returns the map the current round is played on.
func (g *Game) MapName() string { return g.mapSource() }

// Ticks returns the number of ticks simulated this round.
func (g *Game) Ticks() uint64 {
	if g.world == nil {
		return 0
	}
	return g.world.Tick()
}

// LoadError returns the error that kept the last Reset from building a
// world, if any.
func (g *Game) LoadError() error { return g.loadErr }

// ParamsFromConfig converts the YAML configuration into sim parameters.
func ParamsFromConfig(cfg config.MacPanConfig) sim.Params {
	return sim.Params{
		EntityStep:           cfg.Movement.EntityStep,
		ItemCount:            cfg.Items.Count,
		EnemyMinHP:           cfg.Enemies.MinHP,
		EnemyMaxHP:           cfg.Enemies.MaxHP,
		EntityAnimRate:       cfg.Animation.PlayerRate,
		EntityAnimFrames:     cfg.Animation.PlayerFrames,
		ProjectileAnimRate:   cfg.Animation.ProjectileRate,
		ProjectileAnimFrames: cfg.Animation.ProjectileFrames,
	}
}

func (g *Game) onItemCollected(ev sim.Event) error {
	g.refreshHUD()
	if len(g.world.Items()) == 0 {
		g.state = StateWin
		logger.Debug("maze cleared", "score", ev.Player.Score(), "tick", ev.Tick)
	}
	return nil
}

func (g *Game) onPlayerHit(ev sim.Event) error {
	if g.state != StatePlaying {
		return nil
	}
	g.lives--
	logger.Debug("player hit", "lives", g.lives, "enemy_kind", ev.Enemy.Kind(), "tick", ev.Tick)
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		logger.Debug("game over", "score", ev.Player.Score(), "tick", ev.Tick)
	} else {
		g.world.RespawnPlayer()
	}
	g.refreshHUD()
	return nil
}

func (g *Game) refreshHUD() {
	g.hud = fmt.Sprintf("MacPan | Lives: %d | Score: %d", g.lives, g.score())
}

func (g *Game) score() int {
	if g.world == nil {
		return 0
	}
	return g.world.Player().Score()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart with a fresh seed so the next round differs
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		next := g.runtime
		next.Seed = time.Now().UnixNano()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	if err := g.world.Step(); err != nil {
		g.fail(fmt.Errorf("macpan: step %d: %w", g.world.Tick(), err))
		return core.StepResult{State: g.State()}
	}

	g.world.SetRespawnBonus(g.difficulty.ExtraEnemyHP(g.score(), int(g.world.Tick())))

	return core.StepResult{State: g.State()}
}

// applyInput translates actions into the two sim verbs.
func (g *Game) applyInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.world.RequestTurn(sim.North)
	case in.Has(core.ActionDown):
		g.world.RequestTurn(sim.South)
	case in.Has(core.ActionLeft):
		g.world.RequestTurn(sim.West)
	case in.Has(core.ActionRight):
		g.world.RequestTurn(sim.East)
	}
	if in.Has(core.ActionFire) {
		g.world.FireProjectile()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("macpan", func() registry.Game {
		return New()
	})
	registry.Register("macpan_arena", func() registry.Game {
		return NewArena()
	})
}

var _ registry.Rounder = (*Game)(nil)
