// Package config provides YAML-based game configuration loading and
// difficulty management for MacPan.
package config

// MacPanConfig contains all configuration for MacPan.
type MacPanConfig struct {
	Playfield  MacPanPlayfield  `yaml:"playfield"`
	Movement   MacPanMovement   `yaml:"movement"`
	Items      MacPanItems      `yaml:"items"`
	Enemies    MacPanEnemies    `yaml:"enemies"`
	Player     MacPanPlayer     `yaml:"player"`
	Animation  MacPanAnimation  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MacPanPlayfield defines the maze geometry.
type MacPanPlayfield struct {
	TileSize int    `yaml:"tile_size"` // pixels per tile edge
	Map      string `yaml:"map"`       // built-in map name or file path; empty means the variant's map
}

// MacPanMovement defines per-tick movement.
type MacPanMovement struct {
	EntityStep int `yaml:"entity_step"` // pixels per tick; projectiles move 3x
}

// MacPanItems defines the collectibles.
type MacPanItems struct {
	Count int `yaml:"count"`
}

// MacPanEnemies defines enemy toughness.
type MacPanEnemies struct {
	MinHP int `yaml:"min_hp"`
	MaxHP int `yaml:"max_hp"`
}

// MacPanPlayer defines player parameters.
type MacPanPlayer struct {
	Lives int `yaml:"lives"`
}

// MacPanAnimation defines sprite animation rates in frames per second.
type MacPanAnimation struct {
	PlayerRate       float64 `yaml:"player_rate"`
	PlayerFrames     int     `yaml:"player_frames"`
	ProjectileRate   float64 `yaml:"projectile_rate"`
	ProjectileFrames int     `yaml:"projectile_frames"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraEnemyHP int `yaml:"extra_enemy_hp"` // hit points added to respawns at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
