// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/maze"
	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk YAML structure for a level file.
type YAMLLevel struct {
	Name         string      `yaml:"name"`
	Rows         []string    `yaml:"rows"`
	Collectibles []YAMLPoint `yaml:"collectibles,omitempty"`
	Obstacles    []YAMLPoint `yaml:"obstacles,omitempty"`
	TimeLimit    int         `yaml:"time_limit"`
}

// YAMLPoint is a grid coordinate in YAML format.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DefaultTimeLimit is used when a level file omits time_limit.
const DefaultTimeLimit = 60

// ParseYAML parses a YAML level file into a playable level definition.
// The definition is validated by compiling it, so a file that parses but
// cannot be played (no exit, item inside a wall) is rejected here.
func ParseYAML(data []byte) (maze.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return maze.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	limit := yl.TimeLimit
	if limit <= 0 {
		limit = DefaultTimeLimit
	}

	level := maze.Level{
		Name:         yl.Name,
		Grid:         yl.Rows,
		Collectibles: points(yl.Collectibles),
		Obstacles:    points(yl.Obstacles),
		TimeLimit:    limit,
	}

	if _, err := level.Compile(); err != nil {
		return maze.Level{}, err
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func points(pts []YAMLPoint) []core.Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = core.Point{X: p.X, Y: p.Y}
	}
	return out
}
