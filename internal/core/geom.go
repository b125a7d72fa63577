// Package core provides fundamental types and utilities for the maze
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Point represents a cell coordinate on the maze grid.
type Point struct {
	X, Y int
}

// Offset returns the point translated by (dx, dy).
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
