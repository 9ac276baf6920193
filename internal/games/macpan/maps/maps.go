// Package maps holds the built-in MacPan mazes and loads custom ones from
// disk. The sim package does not depend on maps.
package maps

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"
)

//go:embed *.txt
var builtin embed.FS

// Default is the map used when none is named.
const Default = "classic"

// Names returns the built-in map names, sorted.
func Names() []string {
	entries, err := builtin.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Text returns the raw text of a built-in map.
func Text(name string) (string, error) {
	data, err := builtin.ReadFile(name + ".txt")
	if err != nil {
		return "", fmt.Errorf("maps: unknown map %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return string(data), nil
}

// Builtin parses a built-in map.
func Builtin(name string, tileSize int) (*sim.TileGrid, error) {
	text, err := Text(name)
	if err != nil {
		return nil, err
	}
	g, err := sim.LoadString(text, tileSize)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", name, err)
	}
	return g, nil
}

// LoadFile parses a map file from disk. A leading ~ expands to the home
// directory.
func LoadFile(path string, tileSize int) (*sim.TileGrid, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("maps: expand home: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maps: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := sim.Load(f, tileSize)
	if err != nil {
		return nil, fmt.Errorf("maps: %s: %w", path, err)
	}
	return g, nil
}

// Resolve loads a built-in map when nameOrPath names one, and a file
// otherwise.
func Resolve(nameOrPath string, tileSize int) (*sim.TileGrid, error) {
	if nameOrPath == "" {
		nameOrPath = Default
	}
	if _, err := builtin.ReadFile(nameOrPath + ".txt"); err == nil {
		return Builtin(nameOrPath, tileSize)
	}
	return LoadFile(nameOrPath, tileSize)
}
