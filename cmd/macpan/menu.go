package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-macpan/internal/platform/tui"
	"github.com/vovakirdan/tui-macpan/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a maze variant from a menu",
	Long: `Start MacPan in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play.
After a round ends and you quit, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  macpan menu
  macpan menu --fps 30
  macpan menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := configureGames(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	restore := useLogFile()
	defer restore()

	cfg := runtimeConfig()
	fixedSeed := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		if !fixedSeed {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
