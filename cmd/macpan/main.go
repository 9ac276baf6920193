// macpan is a terminal maze game: steer through a tile maze, eat every
// item, and shoot the wandering enemies before they catch you.
//
// Usage:
//
//	macpan list               - List maze variants
//	macpan play [variant]     - Play a variant (default: macpan)
//	macpan menu               - Pick a variant interactively
//	macpan scores <variant>   - Show high scores for a variant
//	macpan board              - Interactive scoreboard
//	macpan check <map-file>   - Validate a map file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 45)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.macpan/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the maze variants
	_ "github.com/vovakirdan/tui-macpan/internal/games/macpan"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "macpan",
	Short: "MacPan - a maze chase in your terminal",
	Long: `MacPan is a tile maze game for the terminal. Eat every item on the
map while enemies wander the corridors; shoot them to clear the way.

Available commands:
  list     - Show maze variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  board    - Interactive scoreboard
  check    - Validate a map file

Examples:
  macpan play
  macpan play macpan_arena --difficulty hard
  macpan play --map ./my-maze.txt
  macpan menu
  macpan scores macpan
  macpan check ./my-maze.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return setupLogging()
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 45, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.macpan/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(checkCmd)
}
