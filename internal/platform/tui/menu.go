package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// MenuChoice is what the player picked in the start menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// Difficulties lists the presets offered by the menu, easiest first.
var Difficulties = []string{"easy", "normal", "hard", "fixed"}

var menuItems = []struct {
	label  string
	choice MenuChoice
}{
	{"Play", MenuChoicePlay},
	{"High Scores", MenuChoiceScores},
	{"Quit", MenuChoiceQuit},
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor     int
	difficulty int // index into Difficulties
	highScore  int
	width      int
	height     int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	help       help.Model
	choice     MenuChoice
}

// NewMenuModel creates a new menu model. difficulty preselects a preset;
// unknown names fall back to normal.
func NewMenuModel(store *storage.Store, gameID, difficulty string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		difficulty: 1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.difficulty = core.Clamp(m.difficulty-1, 0, len(Difficulties)-1)

	case key.Matches(msg, m.keys.Right):
		m.difficulty = core.Clamp(m.difficulty+1, 0, len(Difficulties)-1)

	case key.Matches(msg, m.keys.Select):
		m.choice = menuItems[m.cursor].choice
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  B L O C K S  "), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(menuDimStyle.Render("Best: "+humanize.Comma(int64(m.highScore))), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.label
		if item.choice == MenuChoicePlay {
			line += fmt.Sprintf("  < %s >", Difficulties[m.difficulty])
			if config.IsFixedPreset(config.DifficultyPreset(m.Difficulty())) {
				line += " no speed-up"
			}
		}
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Difficulty returns the selected difficulty preset.
func (m MenuModel) Difficulty() string {
	return Difficulties[m.difficulty]
}

// Choice returns what the player picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID, difficulty string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, difficulty, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}, nil
}
