package maze

import (
	"fmt"

	"github.com/ayudkin/tui-maze/internal/input"
)

// State is the session's position in the run state machine.
type State int

const (
	StateActive       State = iota
	StateLevelCleared       // waiting for confirm before the next level
	StateLifeLost           // short interstitial before the retried attempt
	StateGameOver           // terminal: out of lives
	StateVictory            // terminal: catalog exhausted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateLevelCleared:
		return "level_cleared"
	case StateLifeLost:
		return "life_lost"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Rules carries the scoring and survival constants of a run.
type Rules struct {
	InitialLives        int // lives at run start
	CollectiblePoints   int // points per collectible, granted on pickup
	CollectibleBonus    int // per collectible gathered, granted on completion
	TimeBonusMultiplier int // per remaining second, granted on completion
	LifeLostTicks       int // length of the life-lost interstitial
}

// DefaultRules returns the classic ruleset.
func DefaultRules() Rules {
	return Rules{
		InitialLives:        3,
		CollectiblePoints:   100,
		CollectibleBonus:    50,
		TimeBonusMultiplier: 10,
		LifeLostTicks:       120, // 2 seconds at 60 ticks/s
	}
}

// Session runs one player through a level catalog: it owns the compiled
// board, the attempt overlay and the player, and advances them one tick at
// a time. All mutation happens here; the board stays read-only and the
// player knows nothing about maze structure.
type Session struct {
	levels   []Level
	rules    Rules
	tickRate int

	levelIndex int
	board      *Board
	overlay    *Overlay
	player     Player

	state         State
	elapsedTicks  int
	lifeLostTicks int
}

// NewSession starts a run over the given catalog at the given level index.
// The first level is compiled immediately, so a malformed definition fails
// here rather than mid-run.
func NewSession(levels []Level, rules Rules, tickRate, startLevel int) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrMalformedLevel)
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	s := &Session{
		levels:   levels,
		rules:    rules,
		tickRate: tickRate,
	}
	s.player.Lives = rules.InitialLives

	if err := s.startLevel(startLevel); err != nil {
		return nil, err
	}
	s.state = StateActive
	return s, nil
}

// startLevel compiles and enters the level at the given index, resetting
// the attempt-scoped state. Lives and score carry over.
func (s *Session) startLevel(i int) error {
	if i < 0 || i >= len(s.levels) {
		return fmt.Errorf("%w: %d", ErrInvalidLevelIndex, i)
	}
	level := &s.levels[i]

	board, err := level.Compile()
	if err != nil {
		return err
	}

	s.levelIndex = i
	s.board = board
	s.overlay = NewOverlay(level)
	s.player.ResetAttempt(board.Start())
	s.elapsedTicks = 0
	return nil
}

// Tick advances the session by one step using the polled intent.
// This is the per-tick algorithm: candidate move, walkability, pickup,
// obstacle, exit, and only then the timer.
func (s *Session) Tick(dir input.Direction) {
	switch s.state {
	case StateGameOver, StateVictory, StateLevelCleared:
		// Terminal states and the cleared screen consume no ticks;
		// advancing past a cleared level is an explicit Advance call.
		return
	case StateLifeLost:
		s.lifeLostTicks--
		if s.lifeLostTicks <= 0 {
			s.restartAttempt()
		}
		return
	}

	s.elapsedTicks++

	if dir != input.None {
		// Moves into walls are a silent no-op, not an error.
		candidate := s.player.Move(dir)
		if s.board.IsWalkable(candidate) {
			s.player.Pos = candidate

			if s.overlay.Consume(candidate) {
				s.player.Collect(s.rules.CollectiblePoints)
			}

			if s.overlay.ObstacleAt(candidate) {
				s.loseLife()
				return
			}

			if s.board.IsExit(candidate) {
				s.completeLevel()
				return
			}
		}
	}

	// Exceeding the limit costs a life, exactly like an obstacle hit.
	// The timer is settled after the move, so reaching the exit on the
	// final tick still clears the level.
	if s.TimeLimit() > 0 && s.elapsedTicks > s.TimeLimit()*s.tickRate {
		s.loseLife()
	}
}

// Advance moves on from a cleared level: the next catalog entry, or
// victory when the catalog is exhausted. A no-op in any other state.
func (s *Session) Advance() error {
	if s.state != StateLevelCleared {
		return nil
	}
	next := s.levelIndex + 1
	if next >= len(s.levels) {
		s.state = StateVictory
		return nil
	}
	if err := s.startLevel(next); err != nil {
		return err
	}
	s.state = StateActive
	return nil
}

// completeLevel settles the attempt bonuses and parks the session on the
// cleared screen: CollectibleBonus per pickup plus TimeBonusMultiplier per
// full remaining second.
func (s *Session) completeLevel() {
	bonus := s.rules.CollectibleBonus * s.player.Collected
	timeBonus := int(s.RemainingSeconds() * float64(s.rules.TimeBonusMultiplier))
	s.player.AddScore(bonus + timeBonus)
	s.state = StateLevelCleared
}

// loseLife decrements lives and either ends the run or schedules the
// retried attempt behind a short interstitial.
func (s *Session) loseLife() {
	if s.player.Lives > 0 {
		s.player.Lives--
	}
	if s.player.Lives == 0 {
		s.state = StateGameOver
		return
	}
	s.state = StateLifeLost
	s.lifeLostTicks = s.rules.LifeLostTicks
}

// restartAttempt re-enters the current level after a lost life: position
// and timer reset, collectibles restored, lives and score untouched.
func (s *Session) restartAttempt() {
	s.overlay.Reset()
	s.player.ResetAttempt(s.board.Start())
	s.elapsedTicks = 0
	s.state = StateActive
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Player returns the player entity.
func (s *Session) Player() *Player {
	return &s.player
}

// Board returns the compiled maze model of the current level.
func (s *Session) Board() *Board {
	return s.board
}

// Overlay returns the attempt overlay of the current level.
func (s *Session) Overlay() *Overlay {
	return s.overlay
}

// LevelIndex returns the current catalog index.
func (s *Session) LevelIndex() int {
	return s.levelIndex
}

// Level returns the current level definition.
func (s *Session) Level() *Level {
	return &s.levels[s.levelIndex]
}

// LevelCount returns the catalog size for this run.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// TimeLimit returns the current level's time limit in seconds.
func (s *Session) TimeLimit() int {
	return s.levels[s.levelIndex].TimeLimit
}

// ElapsedSeconds returns the time spent in the current attempt.
func (s *Session) ElapsedSeconds() float64 {
	return float64(s.elapsedTicks) / float64(s.tickRate)
}

// RemainingSeconds returns the time left in the current attempt, never
// negative.
func (s *Session) RemainingSeconds() float64 {
	if s.TimeLimit() <= 0 {
		return 0
	}
	rem := float64(s.TimeLimit()) - s.ElapsedSeconds()
	if rem < 0 {
		return 0
	}
	return rem
}
