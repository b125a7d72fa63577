package main

import (
	"testing"

	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/maze"
)

func TestSelectStartLevelIsOneBased(t *testing.T) {
	defer maze.SetStartLevel(0)

	if err := selectStartLevel(3, false); err != nil {
		t.Fatalf("selectStartLevel(3) failed: %v", err)
	}

	game := maze.New()
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	if got := game.State().Level; got != 3 {
		t.Errorf("--level 3 starts level %d, want 3", got)
	}
}

func TestSelectStartLevelRange(t *testing.T) {
	defer maze.SetStartLevel(0)

	if err := selectStartLevel(0, false); err == nil {
		t.Error("selectStartLevel(0) should fail")
	}
	if err := selectStartLevel(maze.LevelCount()+1, false); err == nil {
		t.Error("selectStartLevel past the campaign end should fail")
	}
	if err := selectStartLevel(maze.LevelCount(), false); err != nil {
		t.Errorf("selectStartLevel at the campaign end failed: %v", err)
	}
	// Custom packs defer the range check to loading.
	if err := selectStartLevel(maze.LevelCount()+5, true); err != nil {
		t.Errorf("selectStartLevel with a custom pack failed: %v", err)
	}
}
