// Package maze implements the maze navigation game: a grid of walls and
// paths, collectibles and obstacles, and a player racing a per-level clock
// toward the exit across a ten-level campaign.
package maze

// CellKind is the static tag of one grid position.
type CellKind int

const (
	Wall CellKind = iota
	Path
	Exit
)

// String returns a human-readable name for the cell kind.
func (c CellKind) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Level grid symbols. This literal format is the authoring contract for
// custom levels: one rune per cell, row-oriented.
const (
	SymbolWall  = 'W'
	SymbolPath  = ' '
	SymbolStart = 'P' // player start; the cell itself is a path
	SymbolExit  = 'E'
)
