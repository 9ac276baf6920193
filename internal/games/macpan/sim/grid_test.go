package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-macpan/internal/core"
)

func TestLoadSmallMap(t *testing.T) {
	g, err := LoadString("$.\n#.", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	if g.Cols() != 2 || g.Rows() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", g.Cols(), g.Rows())
	}
	if g.PlayerSpawn() != (Tile{0, 0}) {
		t.Errorf("player spawn = %v, want (0,0)", g.PlayerSpawn())
	}
	spawns := g.EnemySpawns()
	if len(spawns) != 2 || spawns[0] != (Tile{1, 0}) || spawns[1] != (Tile{1, 1}) {
		t.Errorf("enemy spawns = %v, want [(1,0) (1,1)]", spawns)
	}

	walls := map[Tile]bool{{0, 1}: true}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if got := g.IsWall(col, row); got != walls[Tile{col, row}] {
				t.Errorf("IsWall(%d,%d) = %v", col, row, got)
			}
		}
	}

	if g.Width() != 32 || g.Height() != 32 {
		t.Errorf("playfield = %dx%d px, want 32x32", g.Width(), g.Height())
	}
}

func TestLoadSpawnOnlyMap(t *testing.T) {
	// Same layout with free floor instead of the second spawn.
	g, err := LoadString("$.\n# ", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	spawns := g.EnemySpawns()
	if len(spawns) != 1 || spawns[0] != (Tile{1, 0}) {
		t.Errorf("enemy spawns = %v, want [(1,0)]", spawns)
	}
	if g.IsWall(1, 1) || g.IsWall(1, 0) || g.IsWall(0, 0) {
		t.Error("expected only (0,1) to be a wall")
	}
	if !g.IsWall(0, 1) {
		t.Error("expected (0,1) to be a wall")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
	}{
		{"empty", "", 0},
		{"only blank lines", "\n\n", 0},
		{"no player", "###\n#.#\n###", 0},
		{"two players same row", "$ $", 1},
		{"two players later row", "#\n$\n$", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.text, 16)
			var mfe *MapFormatError
			if !errors.As(err, &mfe) {
				t.Fatalf("err = %v, want *MapFormatError", err)
			}
			if mfe.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", mfe.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadBadTileSize(t *testing.T) {
	if _, err := LoadString("$", 0); err == nil {
		t.Error("expected error for zero tile size")
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	g, err := LoadString("#\n$##", 8)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if g.Cols() != 3 {
		t.Fatalf("cols = %d, want 3", g.Cols())
	}
	if g.IsWall(1, 0) || g.IsWall(2, 0) {
		t.Error("padding cells should be free")
	}
	if !g.IsWall(2, 1) {
		t.Error("(2,1) should be a wall")
	}
}

func TestLoadLineEndings(t *testing.T) {
	g, err := LoadString("#$\r\n.#\r\n\n\n", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if g.Cols() != 2 || g.Rows() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", g.Cols(), g.Rows())
	}
	if !g.IsWall(1, 1) {
		t.Error("(1,1) should be a wall")
	}
}

func TestIsWallOutOfBoundsPanics(t *testing.T) {
	g, err := LoadString("$ \n  ", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	cases := []struct{ col, row int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IsWall(%d,%d) did not panic", c.col, c.row)
				}
			}()
			g.IsWall(c.col, c.row)
		}()
	}
}

func TestHitsWall(t *testing.T) {
	// Wall occupies pixels [16,32) × [16,32).
	g, err := LoadString("$  \n # \n   ", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, false},
		{"diagonal touch", 1, 1, true},
		{"above wall", 16, 0, false},
		{"one pixel into wall", 16, 1, true},
		{"right of wall", 32, 16, false},
		{"last pixel of wall", 31, 16, true},
		{"below wall", 16, 32, false},
		{"bottom right", 32, 32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := core.NewRect(tt.x, tt.y, 16, 16)
			if got := g.HitsWall(box); got != tt.want {
				t.Errorf("HitsWall(%v) = %v, want %v", box, got, tt.want)
			}
		})
	}
}

func TestHitsWallMissesEnclosedWall(t *testing.T) {
	// A box wider than a tile samples only its corners, so a wall fully
	// under it goes unnoticed.
	g, err := LoadString("$    \n     \n  #  \n     \n     ", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	box := core.NewRect(8, 8, 48, 48)
	if g.HitsWall(box) {
		t.Error("corner sampling should not see the enclosed wall")
	}
}

func TestRandomFreeCell(t *testing.T) {
	g, err := LoadString("#####\n#$ ##\n# # #\n#####", 16)
	if err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		x, y := g.RandomFreeCell(rng, true)
		if x%16 != 0 || y%16 != 0 {
			t.Fatalf("aligned cell (%d,%d) not on tile lattice", x, y)
		}
		if g.IsWallAt(x, y) {
			t.Fatalf("aligned cell (%d,%d) is a wall", x, y)
		}

		x, y = g.RandomFreeCell(rng, false)
		if x < 0 || y < 0 || x >= g.Width() || y >= g.Height() {
			t.Fatalf("raw cell (%d,%d) outside playfield", x, y)
		}
		if g.IsWallAt(x, y) {
			t.Fatalf("raw cell (%d,%d) is a wall", x, y)
		}
	}
}
