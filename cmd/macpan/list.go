package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-macpan/internal/games/macpan/maps"
	"github.com/vovakirdan/tui-macpan/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List maze variants",
	Long:  `Shows every registered variant and the built-in maps usable with --map.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Built-in maps: %s\n", strings.Join(maps.Names(), ", "))
	fmt.Fprintln(out, "Run 'macpan play <id>' to play a variant.")
}
