package maze

import (
	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/input"
)

// Player tracks position, lives, cumulative score and per-attempt pickups.
// Lives and score persist across attempts within a run; position and the
// attempt counters reset on level (re)entry.
type Player struct {
	Pos       core.Point
	Lives     int
	Score     int
	Collected int // collectibles gathered this attempt
}

// Move returns the cell one step from the current position in the given
// direction. It does not validate the move; walkability is the session's
// call, keeping the player ignorant of maze structure.
func (p *Player) Move(dir input.Direction) core.Point {
	dx, dy := dir.Delta()
	return p.Pos.Offset(dx, dy)
}

// Collect registers one collectible pickup worth the given points.
func (p *Player) Collect(points int) {
	p.Collected++
	p.Score += points
}

// AddScore adds points to the cumulative score.
func (p *Player) AddScore(points int) {
	p.Score += points
}

// ResetAttempt puts the player back at the start cell and zeroes the
// per-attempt pickup count. Lives and score are untouched.
func (p *Player) ResetAttempt(start core.Point) {
	p.Pos = start
	p.Collected = 0
}
