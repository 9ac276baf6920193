package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-macpan/internal/config"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan/maps"
	"github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"
)

var checkCmd = &cobra.Command{
	Use:   "check <map-file>",
	Short: "Validate a map file",
	Long: `Parse a map file and print its size and spawn points.

Map format: one text row per tile row.
  #  wall
  $  player spawn (exactly one)
  .  enemy spawn
  anything else is open floor

Examples:
  macpan check ./my-maze.txt
  macpan check classic`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadMacPan(flagConfig)
	if err != nil {
		logger.Warn("config unavailable, using defaults", "error", err)
		cfg = config.DefaultMacPanConfig()
	}

	grid, err := maps.Resolve(args[0], cfg.Playfield.TileSize)
	if err != nil {
		var mfe *sim.MapFormatError
		if errors.As(err, &mfe) {
			return fmt.Errorf("invalid map %s: %w", args[0], mfe)
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Map:           %s\n", args[0])
	fmt.Fprintf(out, "Tiles:         %d x %d\n", grid.Cols(), grid.Rows())
	fmt.Fprintf(out, "Playfield:     %d x %d px (tile %d)\n", grid.Width(), grid.Height(), grid.TileSize())

	spawn := grid.PlayerSpawn()
	fmt.Fprintf(out, "Player spawn:  (%d, %d)\n", spawn.Col, spawn.Row)

	enemies := grid.EnemySpawns()
	fmt.Fprintf(out, "Enemy spawns:  %d\n", len(enemies))
	for _, t := range enemies {
		fmt.Fprintf(out, "  (%d, %d)\n", t.Col, t.Row)
	}

	walls := 0
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			if grid.IsWall(col, row) {
				walls++
			}
		}
	}
	fmt.Fprintf(out, "Walls:         %d of %d tiles\n", walls, grid.Cols()*grid.Rows())
	return nil
}
