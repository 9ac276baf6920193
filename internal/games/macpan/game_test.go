package macpan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-macpan/internal/config"
	"github.com/vovakirdan/tui-macpan/internal/core"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"
	"github.com/vovakirdan/tui-macpan/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 45,
	Seed:     12345,
}

func fixedClock() time.Time { return time.Unix(1_700_000_000, 0) }

// newTestGame resets package-level CLI overrides and returns a started game.
func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	SetMapPath("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetMapPath("")
	})
	g.clock = fixedClock
	g.Reset(testRuntime)
	if err := g.LoadError(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"macpan", "macpan_arena"} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
	g, err := registry.Create("macpan_arena")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "MacPan (Arena)" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%60 == 0:
			inputs[i].Set([]core.Action{core.ActionRight, core.ActionDown, core.ActionLeft, core.ActionUp}[(i/60)%4])
		case i%23 == 0:
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, New())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestInputTurnsPlayer(t *testing.T) {
	g := newTestGame(t, New())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	if d := g.world.Player().Direction(); d != sim.East {
		t.Errorf("heading = %v, want east", d)
	}
	if x, _ := g.world.Player().Position(); x != 17 {
		t.Errorf("x = %d, want 17", x)
	}
}

func TestFireLaunchesProjectile(t *testing.T) {
	g := newTestGame(t, New())

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	if n := len(g.world.Projectiles()); n != 1 {
		t.Errorf("projectiles = %d, want 1", n)
	}
}

func TestPlayerHitCostsLife(t *testing.T) {
	g := newTestGame(t, New())
	startLives := g.lives

	ex, ey := g.world.Enemies()[0].Position()
	g.world.Player().Warp(ex, ey)
	g.Step(core.NewInputFrame())

	st := g.State()
	if st.Lives != startLives-1 {
		t.Fatalf("lives = %d, want %d", st.Lives, startLives-1)
	}
	if st.GameOver {
		t.Fatal("game should continue with lives left")
	}
	if !strings.Contains(g.hud, "Lives: 2") {
		t.Errorf("hud = %q", g.hud)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, New())
	g.lives = 1

	ex, ey := g.world.Enemies()[0].Position()
	g.world.Player().Warp(ex, ey)
	g.Step(core.NewInputFrame())

	st := g.State()
	if !st.GameOver || st.Won || st.Lives != 0 {
		t.Fatalf("state = %+v, want game over", st)
	}

	tick := g.world.Tick()
	g.Step(core.NewInputFrame())
	if g.world.Tick() != tick {
		t.Error("world advanced after game over")
	}

	seed := g.runtime.Seed
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	st = g.State()
	if st.GameOver || st.Lives != 3 || g.world.Tick() != 0 {
		t.Errorf("after restart state = %+v tick = %d", st, g.world.Tick())
	}
	if g.runtime.Seed == seed {
		t.Error("restart replayed the previous seed")
	}
}

func TestWinWhenMazeCleared(t *testing.T) {
	g := New()
	newTestGame(t, g)

	// The player's tile is the only free one, so the single item lands
	// under the player and is eaten on the first tick.
	SetMapPath(writeFile(t, "cell.txt", "###\n#$#\n###\n"))
	SetConfigPath(writeFile(t, "macpan.yaml", "items:\n  count: 1\n"))
	g.Reset(testRuntime)
	if err := g.LoadError(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	g.Step(core.NewInputFrame())

	st := g.State()
	if !st.Won || !st.GameOver || st.Score != 1 {
		t.Errorf("state = %+v, want won with score 1", st)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, New())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.world.Tick()
	g.Step(core.NewInputFrame())
	if g.world.Tick() != tick {
		t.Error("world advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestBadMapReportsError(t *testing.T) {
	g := New()
	newTestGame(t, g)

	SetMapPath(writeFile(t, "bad.txt", "###\n#.#\n###\n"))
	g.Reset(testRuntime)

	var mfe *sim.MapFormatError
	if !errors.As(g.LoadError(), &mfe) {
		t.Fatalf("LoadError = %v, want MapFormatError", g.LoadError())
	}
	if !g.State().GameOver {
		t.Error("a round without a world should report game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start MacPan") {
		t.Error("render should explain the load error")
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := newTestGame(t, New())
	small := testRuntime
	small.ScreenW, small.ScreenH = 30, 10
	g.Reset(small)

	tick := g.world.Tick()
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.world.Tick() != tick {
		t.Error("world advanced in a small window")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "MacPan | Lives: 3 | Score: 0") {
		t.Errorf("hud row = %q", screen.Row(0))
	}

	// Only the playfield counts; the HUD and footer text hold letters too.
	grid := g.world.Grid()
	ox := (80 - grid.Cols()*cellW) / 2
	walls, enemies := 0, 0
	for y := hudRows; y < hudRows+grid.Rows(); y++ {
		for x := ox; x < ox+grid.Cols()*cellW; x++ {
			c := screen.GetCell(x, y)
			switch c.Rune {
			case WallChar:
				walls++
			case EnemyChar, EnemyAlt, EnemyWoundedAlt:
				enemies++
			}
		}
	}
	if walls == 0 {
		t.Error("no walls drawn")
	}
	if want := 2 * len(g.world.Enemies()); enemies != want {
		t.Errorf("enemy cells = %d, want %d", enemies, want)
	}

	// Player starts at tile (1,1), facing west with the mouth open.
	if got := screen.Get(ox+cellW, hudRows+1); got != playerGlyphs[sim.West] {
		t.Errorf("player glyph = %q", got)
	}
}

func TestParamsFromConfig(t *testing.T) {
	p := ParamsFromConfig(config.DefaultMacPanConfig())
	if p != sim.DefaultParams() {
		t.Errorf("default config params = %+v, want %+v", p, sim.DefaultParams())
	}
}

func TestResizeKeepsRound(t *testing.T) {
	g := newTestGame(t, New())
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	tick := g.world.Tick()

	g.Resize(30, 10)
	g.Step(core.NewInputFrame())
	if g.world.Tick() != tick {
		t.Error("world advanced in a small window")
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.world.Tick() != tick+1 {
		t.Errorf("tick = %d, want %d", g.world.Tick(), tick+1)
	}
	if g.MapName() != "classic" || g.Ticks() != tick+1 {
		t.Errorf("round info = %s/%d", g.MapName(), g.Ticks())
	}
}
