package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Rules: RulesConfig{
			InitialLives:        3,
			CollectiblePoints:   100,
			CollectibleBonus:    50,
			TimeBonusMultiplier: 10,
			LifeLostTicks:       120,
		},
		Input: InputConfig{
			Method: "keyboard",
			Tilt: TiltConfig{
				DeadzoneDeg: 8.0,
				Smoothing:   0.25,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMazeYAML
}
