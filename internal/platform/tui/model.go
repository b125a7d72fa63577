package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/storage"
)

// Game is the contract between the TUI runner and the game simulation.
// The runner drives Reset/Step/Render at the tick rate; the game owns
// all of its own state.
type Game interface {
	// ID returns a stable identifier used for storage and screenshots.
	ID() string

	// Title returns the human-readable name of the game.
	Title() string

	// Reset initializes or restarts the game with the given configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current public game state.
	State() core.GameState
}

// Model is the Bubble Tea model for running the maze game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	profile    string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the result has been saved for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
// The profile names the player whose results are recorded.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, profile string) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		profile:    profile,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize with new dimensions so the map re-centers.
	// This restarts the current run.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A restart clears the game-over flag, so a fresh run can save again.
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save the result once per finished run.
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.RecordResult(m.profile, m.gameState.Score, m.gameState.Level)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".maze", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, profile string) error {
	model := NewModel(game, store, cfg, profile)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
