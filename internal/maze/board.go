package maze

import (
	"github.com/ayudkin/tui-maze/internal/core"
)

// Board is the compiled, read-only maze model for one level: the cell grid
// plus the start and exit positions. It answers containment queries and is
// never mutated after Compile.
type Board struct {
	width  int
	height int
	cells  [][]CellKind
	start  core.Point
	exit   core.Point
}

// Width returns the grid width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the grid height in cells.
func (b *Board) Height() int {
	return b.height
}

// Start returns the player start cell.
func (b *Board) Start() core.Point {
	return b.start
}

// Exit returns the exit cell.
func (b *Board) Exit() core.Point {
	return b.exit
}

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// CellAt returns the cell kind at p. Out-of-bounds positions read as Wall,
// so callers can never walk off the grid.
func (b *Board) CellAt(p core.Point) CellKind {
	if !b.InBounds(p) {
		return Wall
	}
	return b.cells[p.Y][p.X]
}

// IsWalkable reports whether p is in bounds and not a wall.
func (b *Board) IsWalkable(p core.Point) bool {
	k := b.CellAt(p)
	return k == Path || k == Exit
}

// IsExit reports whether p is the exit cell.
func (b *Board) IsExit(p core.Point) bool {
	return p == b.exit
}

// reachable reports whether to can be reached from from over walkable
// cells. Used once at compile time to reject unsolvable levels.
func (b *Board) reachable(from, to core.Point) bool {
	seen := make(map[core.Point]bool, b.width*b.height)
	queue := []core.Point{from}
	seen[from] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			return true
		}
		for _, n := range []core.Point{
			{X: p.X + 1, Y: p.Y},
			{X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1},
			{X: p.X, Y: p.Y - 1},
		} {
			if !seen[n] && b.IsWalkable(n) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}
