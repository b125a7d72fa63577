package maze

import (
	"errors"
	"fmt"

	"github.com/ayudkin/tui-maze/internal/core"
)

// ErrMalformedLevel reports a level definition that cannot be played:
// inconsistent dimensions, missing or duplicated start/exit, an item on a
// wall, or an exit unreachable from the start. Detected when the level is
// compiled, before any tick runs for it.
var ErrMalformedLevel = errors.New("maze: malformed level")

// Level is an immutable hand-authored level definition: the grid layout,
// item positions and the time limit. Definitions never change after load;
// all per-attempt mutation lives in the Overlay.
type Level struct {
	Name         string
	Grid         []string // rows of SymbolWall/SymbolPath/SymbolStart/SymbolExit
	Collectibles []core.Point
	Obstacles    []core.Point
	TimeLimit    int // seconds per attempt
}

// Compile parses and validates the definition, returning the read-only
// Board the game queries during play.
func (l *Level) Compile() (*Board, error) {
	if len(l.Grid) == 0 {
		return nil, fmt.Errorf("%w: %s: empty grid", ErrMalformedLevel, l.Name)
	}

	height := len(l.Grid)
	width := len(l.Grid[0])

	cells := make([][]CellKind, height)
	var start, exit *core.Point

	for y, row := range l.Grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: %s: row %d has width %d, want %d",
				ErrMalformedLevel, l.Name, y, len(row), width)
		}
		cells[y] = make([]CellKind, width)
		for x, sym := range row {
			p := core.Point{X: x, Y: y}
			switch sym {
			case SymbolWall:
				cells[y][x] = Wall
			case SymbolPath:
				cells[y][x] = Path
			case SymbolStart:
				if start != nil {
					return nil, fmt.Errorf("%w: %s: more than one start", ErrMalformedLevel, l.Name)
				}
				cells[y][x] = Path
				start = &p
			case SymbolExit:
				if exit != nil {
					return nil, fmt.Errorf("%w: %s: more than one exit", ErrMalformedLevel, l.Name)
				}
				cells[y][x] = Exit
				exit = &p
			default:
				return nil, fmt.Errorf("%w: %s: unknown symbol %q at (%d,%d)",
					ErrMalformedLevel, l.Name, string(sym), x, y)
			}
		}
	}

	if start == nil {
		return nil, fmt.Errorf("%w: %s: no start", ErrMalformedLevel, l.Name)
	}
	if exit == nil {
		return nil, fmt.Errorf("%w: %s: no exit", ErrMalformedLevel, l.Name)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  cells,
		start:  *start,
		exit:   *exit,
	}

	for _, p := range l.Collectibles {
		if !b.IsWalkable(p) {
			return nil, fmt.Errorf("%w: %s: collectible at (%d,%d) is not on a walkable cell",
				ErrMalformedLevel, l.Name, p.X, p.Y)
		}
	}
	for _, p := range l.Obstacles {
		if !b.IsWalkable(p) {
			return nil, fmt.Errorf("%w: %s: obstacle at (%d,%d) is not on a walkable cell",
				ErrMalformedLevel, l.Name, p.X, p.Y)
		}
	}

	if !b.reachable(b.start, b.exit) {
		return nil, fmt.Errorf("%w: %s: exit unreachable from start", ErrMalformedLevel, l.Name)
	}

	return b, nil
}

// Width returns the grid width of the definition.
func (l *Level) Width() int {
	if len(l.Grid) == 0 {
		return 0
	}
	return len(l.Grid[0])
}

// Height returns the grid height of the definition.
func (l *Level) Height() int {
	return len(l.Grid)
}
