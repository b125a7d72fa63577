// Package config provides YAML-based configuration loading for the maze
// game: scoring rules, input method tuning and level pack location.
package config

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Rules  RulesConfig  `yaml:"rules"`
	Input  InputConfig  `yaml:"input"`
	Levels LevelsConfig `yaml:"levels"`
}

// RulesConfig defines the scoring and survival constants.
type RulesConfig struct {
	InitialLives        int `yaml:"initial_lives"`
	CollectiblePoints   int `yaml:"collectible_points"`
	CollectibleBonus    int `yaml:"collectible_bonus"`
	TimeBonusMultiplier int `yaml:"time_bonus_multiplier"`
	LifeLostTicks       int `yaml:"life_lost_ticks"`
}

// InputConfig selects and tunes the input source.
type InputConfig struct {
	// Method is the registered source name: "keyboard" or "tilt".
	Method string     `yaml:"method"`
	Tilt   TiltConfig `yaml:"tilt"`
}

// TiltConfig tunes the tilt sensor mapping.
type TiltConfig struct {
	DeadzoneDeg float64 `yaml:"deadzone_deg"`
	Smoothing   float64 `yaml:"smoothing"`
}

// LevelsConfig points at an optional custom level pack.
type LevelsConfig struct {
	// Dir is a directory of YAML level files replacing the built-in
	// campaign. Empty means play the built-in levels.
	Dir string `yaml:"dir"`
}

// Normalize fills any unset field from the defaults, so a partial user
// config never produces a zero-lives game.
func (c *MazeConfig) Normalize() {
	def := DefaultMazeConfig()
	if c.Rules.InitialLives <= 0 {
		c.Rules.InitialLives = def.Rules.InitialLives
	}
	if c.Rules.CollectiblePoints <= 0 {
		c.Rules.CollectiblePoints = def.Rules.CollectiblePoints
	}
	if c.Rules.CollectibleBonus <= 0 {
		c.Rules.CollectibleBonus = def.Rules.CollectibleBonus
	}
	if c.Rules.TimeBonusMultiplier <= 0 {
		c.Rules.TimeBonusMultiplier = def.Rules.TimeBonusMultiplier
	}
	if c.Rules.LifeLostTicks <= 0 {
		c.Rules.LifeLostTicks = def.Rules.LifeLostTicks
	}
	if c.Input.Method == "" {
		c.Input.Method = def.Input.Method
	}
	if c.Input.Tilt.DeadzoneDeg <= 0 {
		c.Input.Tilt.DeadzoneDeg = def.Input.Tilt.DeadzoneDeg
	}
	if c.Input.Tilt.Smoothing <= 0 {
		c.Input.Tilt.Smoothing = def.Input.Tilt.Smoothing
	}
}
