package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMacPan loads MacPan configuration.
// Search order: customPath -> ~/.macpan/configs/macpan.yaml -> ./configs/macpan.yaml -> embedded default
// Files are layered over the hardcoded defaults, so a file may set only
// the keys it cares about.
func LoadMacPan(customPath string) (MacPanConfig, error) {
	cfg := DefaultMacPanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("macpan.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMacPanConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "macpan.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMacPanConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMacPanYAML, &cfg); err != nil {
		return DefaultMacPanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".macpan", "configs", filename)
}

// ApplyMacPanPreset modifies the config based on a difficulty preset.
func ApplyMacPanPreset(cfg *MacPanConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.MinHP = 1
		cfg.Enemies.MaxHP = 1
		cfg.Items.Count = 40
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.MinHP = 2
		cfg.Enemies.MaxHP = 3
		cfg.Items.Count = 80
	}
}

// Validate reports settings no game can be built from.
func (c MacPanConfig) Validate() error {
	switch {
	case c.Playfield.TileSize <= 0:
		return fmt.Errorf("config: playfield.tile_size must be positive, got %d", c.Playfield.TileSize)
	case c.Movement.EntityStep <= 0:
		return fmt.Errorf("config: movement.entity_step must be positive, got %d", c.Movement.EntityStep)
	case c.Playfield.TileSize%c.Movement.EntityStep != 0:
		return fmt.Errorf("config: movement.entity_step %d must divide playfield.tile_size %d",
			c.Movement.EntityStep, c.Playfield.TileSize)
	case c.Player.Lives <= 0:
		return fmt.Errorf("config: player.lives must be positive, got %d", c.Player.Lives)
	case c.Difficulty.Scaling.ExtraEnemyHP < 0:
		return fmt.Errorf("config: difficulty.scaling.extra_enemy_hp must not be negative")
	}
	return nil
}
