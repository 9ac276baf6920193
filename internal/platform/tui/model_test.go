package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-macpan/internal/core"
	"github.com/vovakirdan/tui-macpan/internal/storage"
)

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	steps   int
	endAt   int
	resets  int
	resized [2]int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *scriptedGame) Step(core.InputFrame) core.StepResult {
	if g.steps < g.endAt {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.steps >= g.endAt, Won: true}
}

func (g *scriptedGame) MapName() string { return "tiny" }
func (g *scriptedGame) Ticks() uint64   { return uint64(g.steps) }
func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelSavesRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &scriptedGame{endAt: 3}
	m := NewModel(g, store, core.DefaultConfig(), nil)
	m.Init()

	for range 6 {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d rounds, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 30 || !got.Won || got.Map != "tiny" || got.Ticks != 3 {
		t.Errorf("round = %+v", got)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAt: 1}
	m := NewModel(g, nil, core.DefaultConfig(), nil)
	m.Init()
	m = tick(t, m)
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	next, _ := m.Update(runeKey("r"))
	m = tick(t, next.(Model))
	if g.resets != 2 || m.gameState.GameOver || m.scoreSaved {
		t.Errorf("resets = %d state = %+v saved = %v", g.resets, m.gameState, m.scoreSaved)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	g := &scriptedGame{endAt: 5}
	m := NewModel(g, nil, core.DefaultConfig(), nil)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if g.resized != [2]int{100, 40} || g.resets != 1 {
		t.Errorf("resized = %v resets = %d", g.resized, g.resets)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{endAt: 5}, nil, core.DefaultConfig(), nil)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || !next.(Model).quitting {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}
