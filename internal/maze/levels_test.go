package maze

import (
	"errors"
	"testing"

	"github.com/ayudkin/tui-maze/internal/core"
)

func TestCampaignSize(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("LevelCount = %d, want 10", LevelCount())
	}
}

func TestAllCampaignLevelsCompile(t *testing.T) {
	for i := range Levels {
		level := &Levels[i]
		if level.Name == "" {
			t.Errorf("level %d has no name", i)
		}
		if _, err := level.Compile(); err != nil {
			t.Errorf("level %d (%s): %v", i, level.Name, err)
		}
	}
}

func TestCampaignDifficultyProgression(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		if Levels[i].TimeLimit <= Levels[i-1].TimeLimit {
			t.Errorf("level %d time limit %d not above level %d's %d",
				i, Levels[i].TimeLimit, i-1, Levels[i-1].TimeLimit)
		}
	}

	// Obstacles enter the campaign at level 3 and never leave.
	for i, level := range Levels {
		if i < 2 && len(level.Obstacles) != 0 {
			t.Errorf("level %d has obstacles too early", i)
		}
		if i >= 2 && len(level.Obstacles) == 0 {
			t.Errorf("level %d has no obstacles", i)
		}
	}

	// Every level offers something to collect.
	for i, level := range Levels {
		if len(level.Collectibles) == 0 {
			t.Errorf("level %d has no collectibles", i)
		}
	}
}

// Every campaign level must be winnable: since obstacles cost a life on
// contact, the exit and every collectible have to be reachable on routes
// that avoid all of them.
func TestAllCampaignLevelsWinnable(t *testing.T) {
	for i := range Levels {
		level := &Levels[i]
		board, err := level.Compile()
		if err != nil {
			t.Fatalf("level %d (%s): %v", i, level.Name, err)
		}

		blocked := make(map[core.Point]bool, len(level.Obstacles))
		for _, p := range level.Obstacles {
			blocked[p] = true
		}

		seen := map[core.Point]bool{board.Start(): true}
		queue := []core.Point{board.Start()}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, n := range []core.Point{
				{X: p.X + 1, Y: p.Y},
				{X: p.X - 1, Y: p.Y},
				{X: p.X, Y: p.Y + 1},
				{X: p.X, Y: p.Y - 1},
			} {
				if !seen[n] && board.IsWalkable(n) && !blocked[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}

		if !seen[board.Exit()] {
			t.Errorf("level %d (%s): exit blocked by obstacles", i, level.Name)
		}
		for _, c := range level.Collectibles {
			if !seen[c] {
				t.Errorf("level %d (%s): collectible at (%d,%d) blocked by obstacles",
					i, level.Name, c.X, c.Y)
			}
		}
	}
}

func TestGetLevelBounds(t *testing.T) {
	if _, err := GetLevel(-1); !errors.Is(err, ErrInvalidLevelIndex) {
		t.Errorf("GetLevel(-1) err = %v, want ErrInvalidLevelIndex", err)
	}
	if _, err := GetLevel(LevelCount()); !errors.Is(err, ErrInvalidLevelIndex) {
		t.Errorf("GetLevel(%d) err = %v, want ErrInvalidLevelIndex", LevelCount(), err)
	}
	level, err := GetLevel(0)
	if err != nil {
		t.Fatalf("GetLevel(0): %v", err)
	}
	if level.Name != "First Steps" {
		t.Errorf("level 0 name = %q", level.Name)
	}
}

func TestLevelNames(t *testing.T) {
	names := LevelNames()
	if len(names) != LevelCount() {
		t.Fatalf("LevelNames returned %d names, want %d", len(names), LevelCount())
	}
	for i, name := range names {
		if name != Levels[i].Name {
			t.Errorf("name %d = %q, want %q", i, name, Levels[i].Name)
		}
	}
}
