package maze

import (
	"errors"
	"testing"

	"github.com/ayudkin/tui-maze/internal/core"
)

func compile(t *testing.T, level Level) *Board {
	t.Helper()
	b, err := level.Compile()
	if err != nil {
		t.Fatalf("Compile(%s): %v", level.Name, err)
	}
	return b
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	b := compile(t, Level{
		Name:      "tiny",
		Grid:      []string{"PE"},
		TimeLimit: 10,
	})

	for _, p := range []core.Point{
		{X: -1, Y: 0},
		{X: 2, Y: 0},
		{X: 0, Y: -1},
		{X: 0, Y: 1},
		{X: 100, Y: 100},
	} {
		if b.CellAt(p) != Wall {
			t.Errorf("CellAt(%v) = %v, want Wall", p, b.CellAt(p))
		}
		if b.IsWalkable(p) {
			t.Errorf("IsWalkable(%v) = true, want false", p)
		}
	}
}

func TestCellKinds(t *testing.T) {
	b := compile(t, Level{
		Name: "kinds",
		Grid: []string{
			"WWWW",
			"WPEW",
			"WWWW",
		},
		TimeLimit: 10,
	})

	if got := b.CellAt(core.Point{X: 0, Y: 0}); got != Wall {
		t.Errorf("corner = %v, want Wall", got)
	}
	if got := b.CellAt(core.Point{X: 1, Y: 1}); got != Path {
		t.Errorf("start cell = %v, want Path", got)
	}
	if got := b.CellAt(core.Point{X: 2, Y: 1}); got != Exit {
		t.Errorf("exit cell = %v, want Exit", got)
	}
	if !b.IsExit(core.Point{X: 2, Y: 1}) {
		t.Error("IsExit(exit) = false")
	}
	if b.IsExit(core.Point{X: 1, Y: 1}) {
		t.Error("IsExit(start) = true")
	}
	if b.Start() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Start = %v", b.Start())
	}
	if b.Exit() != (core.Point{X: 2, Y: 1}) {
		t.Errorf("Exit = %v", b.Exit())
	}
}

func TestCompileRejectsMalformedLevels(t *testing.T) {
	cases := []struct {
		name  string
		level Level
	}{
		{"empty grid", Level{Name: "x", Grid: nil}},
		{"ragged rows", Level{Name: "x", Grid: []string{"PE", "W"}}},
		{"no start", Level{Name: "x", Grid: []string{" E"}}},
		{"no exit", Level{Name: "x", Grid: []string{"P "}}},
		{"two starts", Level{Name: "x", Grid: []string{"PPE"}}},
		{"two exits", Level{Name: "x", Grid: []string{"PEE"}}},
		{"unknown symbol", Level{Name: "x", Grid: []string{"P?E"}}},
		{"collectible on wall", Level{
			Name: "x", Grid: []string{"PWE", "   "},
			Collectibles: []core.Point{{X: 1, Y: 0}},
		}},
		{"obstacle on wall", Level{
			Name: "x", Grid: []string{"PWE", "   "},
			Obstacles: []core.Point{{X: 1, Y: 0}},
		}},
		{"collectible out of bounds", Level{
			Name: "x", Grid: []string{"PE"},
			Collectibles: []core.Point{{X: 5, Y: 5}},
		}},
		{"exit unreachable", Level{
			Name: "x", Grid: []string{"PWE"},
		}},
	}

	for _, tc := range cases {
		_, err := tc.level.Compile()
		if !errors.Is(err, ErrMalformedLevel) {
			t.Errorf("%s: err = %v, want ErrMalformedLevel", tc.name, err)
		}
	}
}

func TestCompileAcceptsDetours(t *testing.T) {
	// Reachability must follow corridors, not straight lines.
	b := compile(t, Level{
		Name: "detour",
		Grid: []string{
			"WWWWW",
			"WP WW",
			"W W W",
			"W  EW",
			"WWWWW",
		},
		TimeLimit: 10,
	})
	if b.Width() != 5 || b.Height() != 5 {
		t.Errorf("dimensions = %dx%d, want 5x5", b.Width(), b.Height())
	}
}
