package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MacPanConfig
	if err := yaml.Unmarshal(GetDefaultYAML("macpan"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultMacPanConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, want)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no defaults")
	}
}

func TestLoadMacPanCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macpan.yaml")
	data := "player:\n  lives: 7\nenemies:\n  max_hp: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMacPan(path)
	if err != nil {
		t.Fatalf("LoadMacPan: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Enemies.MaxHP != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Playfield.TileSize != 16 || cfg.Items.Count != 50 || cfg.Enemies.MinHP != 1 {
		t.Errorf("unset keys should keep defaults: %+v", cfg)
	}
}

func TestLoadMacPanErrors(t *testing.T) {
	if _, err := LoadMacPan(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMacPan(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestApplyMacPanPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		maxHP     int
		enabled   bool
		initLevel float64
	}{
		{DifficultyEasy, 5, 1, true, 0.0},
		{DifficultyNormal, 3, 2, true, 0.3},
		{DifficultyHard, 2, 3, true, 0.7},
		{DifficultyFixed, 3, 2, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMacPanConfig()
			ApplyMacPanPreset(&cfg, tt.preset)
			if cfg.Player.Lives != tt.lives || cfg.Enemies.MaxHP != tt.maxHP {
				t.Errorf("lives=%d maxHP=%d, want %d %d", cfg.Player.Lives, cfg.Enemies.MaxHP, tt.lives, tt.maxHP)
			}
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.initLevel {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q,%v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("hard preset = %q,%v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset accepted")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultMacPanConfig()
	cfg.Playfield.TileSize = 0
	if cfg.Validate() == nil {
		t.Error("zero tile size accepted")
	}

	cfg = DefaultMacPanConfig()
	cfg.Movement.EntityStep = 0
	if cfg.Validate() == nil {
		t.Error("zero entity step accepted")
	}

	cfg = DefaultMacPanConfig()
	cfg.Movement.EntityStep = 3
	if cfg.Validate() == nil {
		t.Error("entity step not dividing tile size accepted")
	}

	cfg = DefaultMacPanConfig()
	cfg.Player.Lives = 0
	if cfg.Validate() == nil {
		t.Error("zero lives accepted")
	}
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DefaultMacPanConfig().Difficulty)

	tests := []struct {
		score int
		level float64
		extra int
	}{
		{0, 0.0, 0},
		{25, 0.5, 1},
		{50, 1.0, 2},
		{500, 1.0, 2},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got != tt.level {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.level)
		}
		if got := d.ExtraEnemyHP(tt.score, 0); got != tt.extra {
			t.Errorf("ExtraEnemyHP(%d) = %d, want %d", tt.score, got, tt.extra)
		}
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.3)
	if d.IsEnabled() || d.Level(50, 0) != 0.3 {
		t.Error("disabled manager should stay at the initial level")
	}
	if d.ExtraEnemyHP(50, 0) != 0 {
		t.Errorf("ExtraEnemyHP at level 0.3 = %d, want 0", d.ExtraEnemyHP(50, 0))
	}
}
