package maze

import (
	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/input"
)

// Game adapts a Session to the platform contract: fixed-tick Step with
// abstract input, Render into a screen buffer, restart on game over. All
// maze semantics live in Session; Game only owns presentation state and
// the input source.
type Game struct {
	levels []Level
	rules  Rules

	source input.Source
	feeder input.Feeder

	session *Session
	err     error

	tick     uint64
	tickRate int
	screenW  int
	screenH  int

	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	paused   bool
	tooSmall bool
}

// Package-level start level, set by the CLI/menu before the game resets
// (like picking a level from the campaign menu).
var selectedStartLevel int

// SetStartLevel sets the starting level (1-based). 0 means start from the
// beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a campaign game over the built-in catalog with default rules
// and a keyboard source.
func New() *Game {
	return &Game{
		levels: Levels,
		rules:  DefaultRules(),
		source: input.NewKeyboard(),
	}
}

// SetLevels replaces the level catalog. Call before Reset.
func (g *Game) SetLevels(levels []Level) {
	if len(levels) > 0 {
		g.levels = levels
	}
}

// SetRules replaces the ruleset. Call before Reset.
func (g *Game) SetRules(rules Rules) {
	g.rules = rules
}

// SetSource replaces the input source. Call before Reset. The one place
// the source's concrete shape matters is here: a source that also accepts
// platform frames (the keyboard) gets them fed each Step, any other source
// is polled as-is.
func (g *Game) SetSource(src input.Source) {
	g.source = src
	g.feeder, _ = src.(input.Feeder)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Quest"
}

// Reset starts a fresh run: lives and score back to the rules' defaults,
// level taken from the menu selection (or the first).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.hudHeight = 2

	if g.feeder == nil {
		g.feeder, _ = g.source.(input.Feeder)
	}

	start := 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
		start = selectedStartLevel - 1
		selectedStartLevel = 0 // one-shot selection
	}

	g.session, g.err = NewSession(g.levels, g.rules, g.tickRate, start)
	if g.err != nil {
		g.session = nil
		return
	}
	g.layout()
}

// layout centers the current board under the HUD and flags screens that
// cannot fit it.
func (g *Game) layout() {
	board := g.session.Board()
	requiredW := board.Width() + 2
	requiredH := board.Height() + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - board.Width()) / 2
	g.mapOffsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.runEnded() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.runEnded() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// The cleared screen waits for an explicit confirm.
	if g.session.State() == StateLevelCleared {
		if in.Has(core.ActionConfirm) {
			prev := g.session.LevelIndex()
			if err := g.session.Advance(); err != nil {
				g.err = err
				g.session = nil
				return core.StepResult{State: g.State()}
			}
			if g.session.LevelIndex() != prev {
				g.layout()
			}
		}
		return core.StepResult{State: g.State()}
	}

	if g.feeder != nil {
		g.feeder.Feed(in)
	}
	g.session.Tick(g.source.Poll())

	return core.StepResult{State: g.State()}
}

// runEnded reports whether the current run is over, one way or the other.
func (g *Game) runEnded() bool {
	if g.session == nil {
		return true
	}
	st := g.session.State()
	return st == StateGameOver || st == StateVictory
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	p := g.session.Player()
	return core.GameState{
		Score:    p.Score,
		Lives:    p.Lives,
		Level:    g.session.LevelIndex() + 1,
		GameOver: g.runEnded(),
		Paused:   g.paused,
	}
}
