package config

import (
	_ "embed"
)

//go:embed defaults/macpan.yaml
var defaultMacPanYAML []byte

// DefaultMacPanConfig returns the default MacPan configuration.
func DefaultMacPanConfig() MacPanConfig {
	return MacPanConfig{
		Playfield: MacPanPlayfield{
			TileSize: 16,
		},
		Movement: MacPanMovement{
			EntityStep: 1,
		},
		Items: MacPanItems{
			Count: 50,
		},
		Enemies: MacPanEnemies{
			MinHP: 1,
			MaxHP: 2,
		},
		Player: MacPanPlayer{
			Lives: 3,
		},
		Animation: MacPanAnimation{
			PlayerRate:       8,
			PlayerFrames:     2,
			ProjectileRate:   20,
			ProjectileFrames: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				ExtraEnemyHP: 2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "macpan":
		return defaultMacPanYAML
	default:
		return nil
	}
}
