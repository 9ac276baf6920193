package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-macpan/internal/config"
	"github.com/vovakirdan/tui-macpan/internal/core"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan"
	"github.com/vovakirdan/tui-macpan/internal/platform/tui"
	"github.com/vovakirdan/tui-macpan/internal/registry"
	"github.com/vovakirdan/tui-macpan/internal/storage"
)

var flagMap string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a maze variant",
	Long: `Start playing the given variant (default: macpan).

Controls:
  Arrows/WASD  - Turn (queued until the corridor opens)
  Space        - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, one-hit enemies, fewer items
  normal - Config values, enemies toughen as your score grows
  hard   - Fewer lives, tougher enemies, more items
  fixed  - No progression

Examples:
  macpan play
  macpan play macpan_arena
  macpan play --difficulty hard
  macpan play --map ./my-maze.txt
  macpan play --config ./my-macpan.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Built-in map name or path to a map file")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "macpan"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'macpan list' to see them", gameID)
	}
	if err := configureGames(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := useLogFile()
	defer restore()

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// configureGames hands CLI overrides to the game package before any
// variant is created.
func configureGames() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	macpan.SetConfigPath(flagConfig)
	macpan.SetDifficultyPreset(flagDifficulty)
	macpan.SetMapPath(flagMap)
	macpan.SetLogger(logger)
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
