package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayudkin/tui-maze/internal/core"
	"github.com/ayudkin/tui-maze/internal/storage"
)

// MenuChoice identifies the action picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menuStage tracks which screen of the menu is active.
type menuStage int

const (
	stageList menuStage = iota
	stageProfile
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	stage     menuStage
	nameInput textinput.Model
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	profile   string
	quitting  bool
	selected  MenuChoice
}

// NewMenuModel creates a new menu model. If defaultProfile is non-empty
// the profile prompt is skipped and results are recorded under that name.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, defaultProfile string) MenuModel {
	items := []MenuItem{
		{Choice: MenuChoicePlay, Title: "New Game"},
		{Choice: MenuChoiceScores, Title: "High Scores"},
		{Choice: MenuChoiceQuit, Title: "Quit"},
	}

	ti := textinput.New()
	ti.Placeholder = "player"
	ti.CharLimit = 24
	ti.Width = 24

	return MenuModel{
		items:     items,
		cursor:    0,
		stage:     stageList,
		nameInput: ti,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		profile:   defaultProfile,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.stage == stageProfile {
			return m.handleProfileKey(msg)
		}
		return m.handleListKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleListKey processes keyboard input for menu navigation.
func (m MenuModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := m.items[m.cursor].Choice
		if choice == MenuChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if choice == MenuChoicePlay && m.profile == "" {
			// Ask who is playing before starting a run.
			m.stage = stageProfile
			return m, m.nameInput.Focus()
		}
		m.selected = choice
		return m, tea.Quit
	}

	return m, nil
}

// handleProfileKey processes keyboard input on the profile prompt.
func (m MenuModel) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.stage = stageList
		m.nameInput.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.profile = name
		m.selected = MenuChoicePlay
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  M A Z E   Q U E S T  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.stage == stageProfile {
		b.WriteString(centerText("Enter your name", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter: Start  |  Esc: Back", m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen menu action, MenuChoiceNone if none.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Profile returns the player name entered or preset for this session.
func (m MenuModel) Profile() string {
	return m.profile
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice  MenuChoice
	Profile string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, defaultProfile string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, defaultProfile)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Choice:  m.Selected(),
		Profile: m.Profile(),
		Config:  m.Config(),
	}

	if m.IsQuitting() || m.Selected() == MenuChoiceNone {
		result.Quit = true
	}

	return result, nil
}
