package maze

import (
	"errors"
	"fmt"

	"github.com/ayudkin/tui-maze/internal/core"
)

// ErrInvalidLevelIndex reports a catalog lookup outside [0, LevelCount).
// It indicates a logic error in level-advancement code, not a user fault.
var ErrInvalidLevelIndex = errors.New("maze: invalid level index")

// Levels is the built-in campaign: ten hand-authored mazes of increasing
// size, more collectibles as the run progresses, obstacles from level 3
// onward, and growing time limits. The catalog is built once and never
// mutated.
var Levels = []Level{
	{
		Name: "First Steps",
		Grid: []string{
			"WWWWWWWWWW",
			"WP  W    W",
			"W W W WW W",
			"W W   W  W",
			"W WWW W WW",
			"W     W  W",
			"WWWWW WW W",
			"W        W",
			"W WWWWWWEW",
			"WWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 3, Y: 3}, {X: 7, Y: 5}},
		TimeLimit:    60,
	},
	{
		Name: "More Turns",
		Grid: []string{
			"WWWWWWWWWWWW",
			"WP W   W   W",
			"W  W W W W W",
			"WW W W   W W",
			"W    WWWWW W",
			"W WW       W",
			"W W  WWWWW W",
			"W   WW   W W",
			"WWW    W   W",
			"W   WW WWWEW",
			"WWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 4, Y: 2}, {X: 6, Y: 5}, {X: 10, Y: 7}},
		TimeLimit:    90,
	},
	{
		Name: "Narrow Passages",
		Grid: []string{
			"WWWWWWWWWWWWW",
			"WP   W   W  W",
			"WWWW W W W WW",
			"W    W W    W",
			"W WWWW WWWW W",
			"W         W W",
			"WWWWWW WW W W",
			"W      W  W W",
			"W WWWWWW WW W",
			"W          EW",
			"WWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 6, Y: 3}, {X: 11, Y: 5}, {X: 6, Y: 9}},
		Obstacles:    []core.Point{{X: 6, Y: 6}},
		TimeLimit:    100,
	},
	{
		Name: "Many Paths",
		Grid: []string{
			"WWWWWWWWWWWWWW",
			"WP  W   W    W",
			"W W W W W WW W",
			"W W   W   W  W",
			"W WWWWW W W WW",
			"W       W    W",
			"WWW WWWWWWWW W",
			"W          W W",
			"W WWWWWW W W W",
			"W        W  EW",
			"WWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 3, Y: 2}, {X: 7, Y: 4}, {X: 12, Y: 6}, {X: 5, Y: 9}},
		Obstacles:    []core.Point{{X: 6, Y: 5}},
		TimeLimit:    110,
	},
	{
		Name: "The Spiral",
		Grid: []string{
			"WWWWWWWWWWWWWWW",
			"WP            W",
			"W WWWWWWWWWWW W",
			"W W         W W",
			"W W WWWWWWW W W",
			"W W       W W W",
			"W W W WWW W W W",
			"W W W WE  W W W",
			"W W W WWW W W W",
			"W W W     W W W",
			"W W WWWWWWW W W",
			"W W           W",
			"W WWWWWWWWWWW W",
			"W             W",
			"WWWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 7, Y: 3}, {X: 7, Y: 9}, {X: 11, Y: 6}, {X: 3, Y: 11}},
		Obstacles:    []core.Point{{X: 7, Y: 5}, {X: 9, Y: 11}},
		TimeLimit:    120,
	},
	{
		Name: "Dense Maze",
		Grid: []string{
			"WWWWWWWWWWWWWWW",
			"WP W   W   W  W",
			"WW W W W W W WW",
			"W  W W   W   WW",
			"W WW WWWWWWW  W",
			"W          W WW",
			"WWW WWW WW W  W",
			"W   W   W  WW W",
			"W WWW W W W   W",
			"W     W   W WWW",
			"WWWWW WWW W  EW",
			"WWWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 4, Y: 2}, {X: 8, Y: 5}, {X: 12, Y: 6}, {X: 5, Y: 8}, {X: 2, Y: 9}},
		Obstacles:    []core.Point{{X: 6, Y: 5}, {X: 9, Y: 8}},
		TimeLimit:    130,
	},
	{
		Name: "Long Corridors",
		Grid: []string{
			"WWWWWWWWWWWWWWWW",
			"WP             W",
			"WWWW   WWWWWWW W",
			"W              W",
			"W WWWWWWWWWWWWWW",
			"W              W",
			"WWWWWWWWWWWWW  W",
			"W              W",
			"W  WWWWWWWWWWWWW",
			"W             EW",
			"WWWWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 7, Y: 1}, {X: 14, Y: 3}, {X: 7, Y: 5}, {X: 14, Y: 7}, {X: 7, Y: 9}},
		Obstacles:    []core.Point{{X: 5, Y: 3}, {X: 14, Y: 5}, {X: 1, Y: 7}},
		TimeLimit:    140,
	},
	{
		Name: "Zigzag",
		Grid: []string{
			"WWWWWWWWWWWWWWWW",
			"WP   W     W   W",
			"WWWW W WWW W WWW",
			"W    W W   W   W",
			"W WWWW W WWWWW W",
			"W      W     W W",
			"WWWWWW WWWWW W W",
			"W    W     W W W",
			"W WW WWWWW W W W",
			"W W          W W",
			"W W WWWWWWWWWW W",
			"W             EW",
			"WWWWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 4, Y: 2}, {X: 8, Y: 4}, {X: 12, Y: 6}, {X: 4, Y: 9}, {X: 14, Y: 10}},
		Obstacles:    []core.Point{{X: 8, Y: 3}, {X: 14, Y: 7}, {X: 2, Y: 11}},
		TimeLimit:    150,
	},
	{
		Name: "Branching Out",
		Grid: []string{
			"WWWWWWWWWWWWWWWWW",
			"WP W   W   W    W",
			"W  W W W W W WW W",
			"WW W W   W   W  W",
			"W  W WWWWWWW W WW",
			"W WW       W    W",
			"W    WWWWW WWWW W",
			"WWWW W   W    W W",
			"W    W W WWWW W W",
			"W WWWW W    W W W",
			"W      WWWW W   W",
			"WWWWWW    W WWW W",
			"W      WW W    EW",
			"WWWWWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 4, Y: 2}, {X: 10, Y: 3}, {X: 13, Y: 5}, {X: 6, Y: 8}, {X: 11, Y: 10}, {X: 4, Y: 12}},
		Obstacles:    []core.Point{{X: 8, Y: 5}, {X: 12, Y: 7}, {X: 5, Y: 10}},
		TimeLimit:    160,
	},
	{
		Name: "The Gauntlet",
		Grid: []string{
			"WWWWWWWWWWWWWWWWWW",
			"WP   W     W   W W",
			"WWWW W WWW W W W W",
			"W    W W     W   W",
			"W WWWW W WWWWWWW W",
			"W      W       W W",
			"WWW WWWWWWWWWW W W",
			"W   W        W W W",
			"W WWW WWWWWW W W W",
			"W     W    W   W W",
			"WWWWW W WW WWWWW W",
			"W   W   W        W",
			"W W WWWWW WWWWWWWW",
			"W W             EW",
			"WWWWWWWWWWWWWWWWWW",
		},
		Collectibles: []core.Point{{X: 4, Y: 2}, {X: 8, Y: 3}, {X: 13, Y: 5}, {X: 5, Y: 7}, {X: 12, Y: 8}, {X: 5, Y: 11}, {X: 14, Y: 13}},
		Obstacles:    []core.Point{{X: 8, Y: 4}, {X: 6, Y: 5}, {X: 12, Y: 5}, {X: 7, Y: 13}},
		TimeLimit:    180,
	},
}

// LevelCount returns the number of levels in the campaign.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level definition at the given index.
func GetLevel(i int) (*Level, error) {
	if i < 0 || i >= len(Levels) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevelIndex, i)
	}
	return &Levels[i], nil
}

// LevelNames returns the names of all campaign levels, in order.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i := range Levels {
		names[i] = Levels[i].Name
	}
	return names
}
