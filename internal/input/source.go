// Package input provides the pluggable control abstraction for the maze
// game. A Source produces one abstract directional intent per tick; the
// game loop consumes that intent without knowing whether it came from the
// keyboard or a physical tilt sensor. Swapping control hardware is a
// construction-time choice and never touches game logic.
package input

// Direction is the abstract movement intent produced by a Source.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the grid offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Source produces one directional intent per simulation tick.
// Poll never blocks; absence of input yields None.
type Source interface {
	Poll() Direction
}
