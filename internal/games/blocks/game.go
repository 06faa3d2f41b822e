// Package blocks implements a falling-block puzzle game.
//
// The Game type is the session state machine: it owns the board, the active
// and next pieces and the bag, and advances on two stimuli it does not
// generate itself, player commands (Step/Apply) and gravity ticks (Gravity).
// It never draws to a terminal or reads a device; Render and Snapshot expose
// state for whoever does.
package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "blocks"

// Status is the session state. Exactly one holds at a time.
type Status int

const (
	StatusActive Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is one play session.
type Game struct {
	cfg    Config
	policy Policy
	rng    *rand.Rand

	board    *Board
	bag      *Bag
	current  Piece
	next     Piece
	progress Progress
	softDrop bool
	status   Status

	ticks uint64 // gravity ticks processed while active
	locks int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level settings the CLI fills in before the registry creates a game.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the YAML config file to load (empty for the search path).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// LoadConfig resolves the engine configuration from the config file and
// preset chosen on the command line.
func LoadConfig() (Config, error) {
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return Config{}, err
	}
	settings, err := config.LoadBlocks(configPath)
	if err != nil {
		return Config{}, err
	}
	config.ApplyBlocksPreset(&settings, preset)

	cfg := FromSettings(settings)
	return cfg, cfg.Validate()
}

func init() {
	registry.Register(GameID, "Blocks", func() (registry.Game, error) {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		return New(cfg)
	})
}

// New validates cfg and returns a game ready to play, seeded with 0.
// The platform normally calls Reset with its own seed before the first frame.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		policy: cfg.Policy(),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset reseeds the randomizer and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
}

// Restart discards the board, bag and progress and starts over in place.
// The randomizer keeps its stream, so consecutive games differ.
func (g *Game) Restart() core.StepResult {
	g.restart()
	res := g.result()
	res.IntervalChanged = true
	return res
}

func (g *Game) restart() {
	// Dimensions were validated in New.
	g.board, _ = NewBoard(g.cfg.Cols, g.cfg.Rows)
	g.bag = NewBag(g.rng)
	g.progress = g.policy.Start()
	g.softDrop = false
	g.status = StatusActive
	g.ticks = 0
	g.locks = 0

	g.current = g.spawn()
	g.next = g.spawn()
	if g.current.Collides(g.board) {
		g.status = StatusGameOver
	}
	g.checkScreenSize()
}

func (g *Game) spawn() Piece {
	return Spawn(NewShape(g.bag.Next()), g.cfg.Cols)
}

// Resize records new terminal dimensions. A window too small to show the
// board pauses an active game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
	if g.tooSmall && g.status == StatusActive {
		g.status = StatusPaused
		g.softDrop = false
	}
}

// Step applies the commands of one frame in arrival order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.result()
	for _, a := range in.Actions() {
		r := g.Apply(a)
		res.Locked = res.Locked || r.Locked
		res.Cleared += r.Cleared
		res.IntervalChanged = res.IntervalChanged || r.IntervalChanged
	}
	res.State = g.State()
	res.Interval = g.progress.Interval
	return res
}

// Apply executes a single command. Commands other than pause and restart
// are ignored unless the game is active; restart is only honored after
// game over.
func (g *Game) Apply(a core.Action) core.StepResult {
	switch a {
	case core.ActionMoveLeft:
		g.Move(-1)
	case core.ActionMoveRight:
		g.Move(1)
	case core.ActionSoftDropStart:
		g.SetSoftDrop(true)
	case core.ActionSoftDropStop:
		g.SetSoftDrop(false)
	case core.ActionRotateCW:
		g.RotateCW()
	case core.ActionRotateCCW:
		g.RotateCCW()
	case core.ActionHardDrop:
		return g.HardDrop()
	case core.ActionPause:
		g.TogglePause()
	case core.ActionRestart:
		if g.status == StatusGameOver {
			return g.Restart()
		}
	}
	return g.result()
}

// Move shifts the active piece horizontally if the new position fits.
func (g *Game) Move(dx int) bool {
	if g.status != StatusActive {
		return false
	}
	return g.current.Move(g.board, dx, 0)
}

// RotateCW turns the active piece clockwise with wall kicks.
func (g *Game) RotateCW() bool {
	if g.status != StatusActive {
		return false
	}
	return g.current.Rotate(g.board)
}

// RotateCCW turns the active piece with three clockwise attempts.
func (g *Game) RotateCCW() bool {
	if g.status != StatusActive {
		return false
	}
	return g.current.RotateCCW(g.board)
}

// SetSoftDrop holds or releases soft drop. Holding only takes effect while
// active; releasing is always accepted so a release is never lost to a pause.
func (g *Game) SetSoftDrop(held bool) {
	if held && g.status != StatusActive {
		return
	}
	g.softDrop = held
}

// TogglePause switches between active and paused. It does nothing after
// game over, and cannot resume while the window is too small.
func (g *Game) TogglePause() bool {
	switch g.status {
	case StatusActive:
		g.status = StatusPaused
		return true
	case StatusPaused:
		if g.tooSmall {
			return false
		}
		g.status = StatusActive
		return true
	default:
		return false
	}
}

// HardDrop drops the active piece as far as it goes and locks it at once.
func (g *Game) HardDrop() core.StepResult {
	if g.status != StatusActive {
		return g.result()
	}
	g.current.Y = g.current.GhostRow(g.board)
	return g.lock()
}

// Gravity performs one gravity tick: one step down, or SoftDropSteps steps
// while soft drop is held. The first blocked step locks the piece and the
// rest of the batch is dropped.
func (g *Game) Gravity() core.StepResult {
	if g.status != StatusActive {
		return g.result()
	}
	g.ticks++

	steps := 1
	if g.softDrop {
		steps = g.cfg.SoftDropSteps
	}
	for range steps {
		if !g.current.Move(g.board, 0, 1) {
			return g.lock()
		}
	}
	return g.result()
}

// lock commits the active piece, clears rows, updates progress and spawns
// the next piece. Game over is decided by whether that spawn collides.
func (g *Game) lock() core.StepResult {
	before := g.progress.Interval

	g.board.Lock(g.current.Shape.Matrix, g.current.X, g.current.Y, g.current.Color())
	var cleared int
	g.board, cleared = g.board.ClearCompletedRows()
	g.progress = g.policy.Apply(g.progress, cleared)
	g.locks++

	g.current = g.next
	g.next = g.spawn()
	if g.current.Collides(g.board) {
		g.status = StatusGameOver
		g.softDrop = false
	}

	res := g.result()
	res.Locked = true
	res.Cleared = cleared
	res.IntervalChanged = g.progress.Interval != before
	return res
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Interval: g.progress.Interval,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.progress.Score,
		Level:    g.progress.Level,
		Lines:    g.progress.Lines,
		GameOver: g.status == StatusGameOver,
		Paused:   g.status == StatusPaused,
	}
}

// Status returns the session state.
func (g *Game) Status() Status {
	return g.status
}

// FallInterval returns the gravity interval for the current level.
func (g *Game) FallInterval() time.Duration {
	return g.progress.Interval
}

// SoftDropRelease returns how long the platform should keep soft drop held
// without a repeated key event.
func (g *Game) SoftDropRelease() time.Duration {
	return g.cfg.SoftDropRelease
}

// Board returns a copy of the locked cells.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Current returns the active piece.
func (g *Game) Current() Piece {
	return g.current
}

// Next returns the lookahead piece.
func (g *Game) Next() Piece {
	return g.next
}

// GhostRow returns the row the active piece would land on.
func (g *Game) GhostRow() int {
	return g.current.GhostRow(g.board)
}

// SoftDropHeld reports whether soft drop is currently held.
func (g *Game) SoftDropHeld() bool {
	return g.softDrop
}
