package maze

// Snapshot is a flat, copyable view of the game for tests and debugging.
type Snapshot struct {
	Tick      uint64
	Level     int // 1-indexed
	Score     int
	Lives     int
	PlayerX   int
	PlayerY   int
	Collected int     // pickups this attempt
	Remaining float64 // seconds left on the attempt clock
	State     string
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick, State: StateGameOver.String()}
	}
	p := g.session.Player()
	return Snapshot{
		Tick:      g.tick,
		Level:     g.session.LevelIndex() + 1,
		Score:     p.Score,
		Lives:     p.Lives,
		PlayerX:   p.Pos.X,
		PlayerY:   p.Pos.Y,
		Collected: p.Collected,
		Remaining: g.session.RemainingSeconds(),
		State:     g.session.State().String(),
	}
}
