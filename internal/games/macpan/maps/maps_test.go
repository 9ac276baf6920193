package maps

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-macpan/internal/games/macpan/sim"
)

func TestNames(t *testing.T) {
	want := []string{"arena", "classic"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestBuiltinMapsLoad(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g, err := Builtin(name, 16)
			if err != nil {
				t.Fatalf("Builtin(%q): %v", name, err)
			}
			if g.Cols() != 20 {
				t.Errorf("cols = %d, want 20", g.Cols())
			}
			if len(g.EnemySpawns()) == 0 {
				t.Error("map has no enemy spawns")
			}
			spawn := g.PlayerSpawn()
			if g.IsWall(spawn.Col, spawn.Row) {
				t.Error("player spawn is a wall")
			}
			// Border must be solid so entities stay inside the maze.
			for col := 0; col < g.Cols(); col++ {
				if !g.IsWall(col, 0) || !g.IsWall(col, g.Rows()-1) {
					t.Fatalf("border gap in column %d", col)
				}
			}
		})
	}
}

func TestUnknownBuiltin(t *testing.T) {
	if _, err := Builtin("nope", 16); err == nil {
		t.Error("expected error for unknown map")
	}
}

func TestResolve(t *testing.T) {
	g, err := Resolve("", 16)
	if err != nil {
		t.Fatalf("Resolve default: %v", err)
	}
	if g.Rows() != 15 {
		t.Errorf("classic rows = %d, want 15", g.Rows())
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.txt")
	if err := os.WriteFile(path, []byte("$.\n#.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err = Resolve(path, 8)
	if err != nil {
		t.Fatalf("Resolve file: %v", err)
	}
	if g.Cols() != 2 || g.Rows() != 2 || g.TileSize() != 8 {
		t.Errorf("tiny map = %dx%d tile %d", g.Cols(), g.Rows(), g.TileSize())
	}
}

func TestLoadFileFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("###\n#.#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, 16)
	var mfe *sim.MapFormatError
	if !errors.As(err, &mfe) {
		t.Fatalf("err = %v, want wrapped MapFormatError", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 16); err == nil {
		t.Error("expected error for missing file")
	}
}
