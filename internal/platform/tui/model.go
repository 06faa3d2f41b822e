package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// Rows reserved below the game screen for the key help footer.
const footerHeight = 1

// defaultSoftDropRelease is used when the game does not say how long a soft
// drop stays held without a repeated key event.
const defaultSoftDropRelease = 500 * time.Millisecond

// softDropReleaser is implemented by games that configure the soft-drop
// release delay.
type softDropReleaser interface {
	SoftDropRelease() time.Duration
}

// Options configures a game session.
type Options struct {
	Store  *storage.Store // optional; scores are not saved when nil
	Logger *log.Logger    // optional; discards when nil
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    registry.Game
	ticker  registry.Ticker  // nil for games without gravity
	resizer registry.Resizer // nil for games that reset on resize

	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	gravityGen   int  // current gravity timer chain
	softDropGen  int  // latest soft-drop key event
	softDropHeld bool // a synthetic release is pending
	releaseAfter time.Duration

	runStart   time.Time
	scoreSaved bool // Whether score has been saved for current game over
	lastRunID  string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:         game,
		screen:       core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-footerHeight)),
		store:        opts.Store,
		logger:       logger,
		config:       cfg,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		inputFrame:   core.NewInputFrame(),
		releaseAfter: defaultSoftDropRelease,
	}
	m.help.Width = cfg.ScreenW

	if t, ok := game.(registry.Ticker); ok {
		m.ticker = t
	}
	if r, ok := game.(registry.Resizer); ok {
		m.resizer = r
	}
	if r, ok := game.(softDropReleaser); ok && r.SoftDropRelease() > 0 {
		m.releaseAfter = r.SoftDropRelease()
	}

	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.runStart = time.Now()
	m.logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)

	return m
}

// gameConfig returns the runtime config as seen by the game, which does not
// own the footer rows.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-footerHeight)
	return cfg
}

// Init starts the frame loop and the gravity timer.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.ticker != nil {
		cmds = append(cmds, gravityCmd(m.ticker.FallInterval(), m.gravityGen))
	}
	return tea.Batch(cmds...)
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

	case GravityMsg:
		return m.handleGravity(msg)

	case softDropReleaseMsg:
		if msg.gen == m.softDropGen && m.softDropHeld {
			m.inputFrame.Set(core.ActionSoftDropStop)
			m.softDropHeld = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionSoftDropStart:
		// Terminals send repeats while a key is held and nothing on release,
		// so every repeat pushes the synthetic release further out. Each repeat
		// also re-sends the hold: the game drops it on pause, game over and
		// a too-small window.
		m.softDropGen++
		m.softDropHeld = true
		if !m.inputFrame.Has(core.ActionSoftDropStart) {
			m.inputFrame.Set(core.ActionSoftDropStart)
		}
		return m, softDropReleaseCmd(m.releaseAfter, m.softDropGen)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.help.Width = msg.Width

	if m.resizer != nil {
		m.resizer.Resize(gc.ScreenW, gc.ScreenH)
		m.gameState = m.game.State()
		return m, nil
	}

	// Games without resize support start over at the new size.
	if !m.gameState.GameOver {
		m.game.Reset(gc)
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick applies the commands queued since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	m, cmd := m.applyResult(result)
	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// handleGravity runs one gravity step and re-arms the timer.
func (m Model) handleGravity(msg GravityMsg) (tea.Model, tea.Cmd) {
	if m.ticker == nil || msg.Gen != m.gravityGen {
		return m, nil
	}

	m, cmd := m.applyResult(m.ticker.Gravity())
	if cmd == nil {
		cmd = gravityCmd(m.ticker.FallInterval(), m.gravityGen)
	}
	return m, cmd
}

// applyResult records the outcome of an update. It returns a command that
// starts a new gravity chain when the interval changed.
func (m Model) applyResult(res core.StepResult) (Model, tea.Cmd) {
	prev := m.gameState
	m.gameState = res.State

	if res.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", res.Cleared, "score", res.State.Score, "level", res.State.Level)
	}

	if prev.GameOver && !res.State.GameOver {
		m.scoreSaved = false
		m.runStart = time.Now()
		m.logger.Info("game restarted")
	}

	if res.State.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if res.IntervalChanged && m.ticker != nil {
		m.gravityGen++
		m.logger.Debug("fall interval changed", "interval", res.Interval, "level", res.State.Level)
		return m, gravityCmd(res.Interval, m.gravityGen)
	}
	return m, nil
}

// saveScore records the finished run. Failures are logged and the game
// continues.
func (m *Model) saveScore() {
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "level", st.Level, "lines", st.Lines)

	if m.store == nil || st.Score <= 0 {
		return
	}

	runID, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Score:    st.Score,
		Level:    st.Level,
		Lines:    st.Lines,
		Seed:     m.config.Seed,
		Duration: time.Since(m.runStart),
	})
	if err != nil {
		m.logger.Warn("could not save score", "err", err)
		return
	}
	m.lastRunID = runID
	m.logger.Info("score saved", "run", runID)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".blocks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given game and returns the
// final model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		model = m
	}
	return model, err
}
