package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-macpan/internal/platform/tui"
	"github.com/vovakirdan/tui-macpan/internal/registry"
	"github.com/vovakirdan/tui-macpan/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 rounds and overall stats for the given variant.

Examples:
  macpan scores macpan
  macpan scores macpan_arena
  macpan scores macpan --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'macpan list' to see them", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'macpan play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-7s  %-12s  %-7s  %s\n", "Rank", "Score", "Result", "Map", "Ticks", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-7s  %-12s  %-7s  %s\n", "----", "-----", "------", "---", "-----", "----")
	for i, e := range scores {
		result := "lost"
		if e.Won {
			result = "cleared"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-7s  %-12s  %-7d  %s\n",
			i+1, e.Score, result, e.Map, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Warn("cannot load stats", "error", err)
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Rounds: %d  Cleared: %d  Average: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	return nil
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	cfg := runtimeConfig()
	if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}
