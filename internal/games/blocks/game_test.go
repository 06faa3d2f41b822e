package blocks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(DefaultConfig())
	require.NoError(t, err)
	g.Reset(testRuntime(1))
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero cols", func(c *Config) { c.Cols = 0 }, ErrInvalidDimensions},
		{"too narrow for I", func(c *Config) { c.Cols = 3 }, ErrInvalidDimensions},
		{"too short", func(c *Config) { c.Rows = 1 }, ErrInvalidDimensions},
		{"zero fall interval", func(c *Config) { c.InitialFallInterval = 0 }, ErrInvalidTiming},
		{"zero floor", func(c *Config) { c.SpeedFloor = 0 }, ErrInvalidTiming},
		{"negative step", func(c *Config) { c.SpeedStep = -time.Millisecond }, ErrInvalidTiming},
		{"zero lines per level", func(c *Config) { c.LinesPerLevel = 0 }, ErrInvalidTiming},
		{"zero soft drop steps", func(c *Config) { c.SoftDropSteps = 0 }, ErrInvalidTiming},
		{"zero soft drop release", func(c *Config) { c.SoftDropRelease = 0 }, ErrInvalidTiming},
		{"negative soft drop release", func(c *Config) { c.SoftDropRelease = -time.Second }, ErrInvalidTiming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGameStartsActive(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, core.GameState{Level: 1}, g.State())
	assert.Equal(t, 700*time.Millisecond, g.FallInterval())
	assert.Equal(t, 0, g.Board().Filled())
	assert.Equal(t, 0, g.Current().Y)
	assert.Len(t, g.Snapshot().Bag, KindCount-2, "two kinds drawn for current and next")
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs end in identical states.
	g1 := newTestGame(t)
	g2 := newTestGame(t)
	g1.Reset(testRuntime(12345))
	g2.Reset(testRuntime(12345))

	frame := core.NewInputFrame()
	for i := range 400 {
		frame.Clear()
		switch i % 7 {
		case 1:
			frame.Set(core.ActionMoveLeft)
		case 3:
			frame.Set(core.ActionRotateCW)
		case 5:
			frame.Set(core.ActionMoveRight)
			frame.Set(core.ActionMoveRight)
		}
		if i%40 == 39 {
			frame.Set(core.ActionHardDrop)
		}

		g1.Step(frame)
		g2.Step(frame)
		g1.Gravity()
		g2.Gravity()
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestGravityMovesOneRow(t *testing.T) {
	g := newTestGame(t)

	res := g.Gravity()
	assert.False(t, res.Locked)
	assert.False(t, res.IntervalChanged)
	assert.Equal(t, 1, g.Current().Y)
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestSoftDropMovesFiveRows(t *testing.T) {
	g := newTestGame(t)
	g.current = Piece{Shape: NewShape(KindO), X: 4, Y: 0}

	g.Apply(core.ActionSoftDropStart)
	assert.True(t, g.SoftDropHeld())
	g.Gravity()
	assert.Equal(t, 5, g.Current().Y)

	g.Apply(core.ActionSoftDropStop)
	g.Gravity()
	assert.Equal(t, 6, g.Current().Y)
}

func TestSoftDropLockDiscardsRemainingSteps(t *testing.T) {
	g := newTestGame(t)
	g.current = Piece{Shape: NewShape(KindO), X: 4, Y: 16}
	next := g.Next()

	g.SetSoftDrop(true)
	res := g.Gravity()

	assert.True(t, res.Locked)
	assert.Equal(t, 0, res.Cleared)
	assert.Equal(t, next.Kind(), g.Current().Kind())
	assert.Equal(t, 0, g.Current().Y, "new piece does not inherit the batch")
	assert.Equal(t, 4, g.Board().Filled())

	b := g.Board()
	for _, p := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		c, _ := b.At(p.X, p.Y)
		assert.Equal(t, core.ColorYellow, c, "cell %v", p)
	}
}

func TestHardDropLocksAtGhostRow(t *testing.T) {
	g := newTestGame(t)
	g.current = Spawn(NewShape(KindO), 10)
	next := g.Next()

	res := g.Apply(core.ActionHardDrop)

	assert.True(t, res.Locked)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, next.Kind(), g.Current().Kind())

	c, _ := g.Board().At(4, 18)
	assert.Equal(t, core.ColorYellow, c)
	c, _ = g.Board().At(5, 19)
	assert.Equal(t, core.ColorYellow, c)
}

func TestHardDropClearsRows(t *testing.T) {
	g := newTestGame(t)
	fillRow(g.board, 19, core.ColorRed, 4, 5)
	fillRow(g.board, 18, core.ColorRed, 4, 5)
	g.current = Spawn(NewShape(KindO), 10)

	res := g.HardDrop()

	assert.True(t, res.Locked)
	assert.Equal(t, 2, res.Cleared)
	assert.False(t, res.IntervalChanged)
	assert.Equal(t, 200, res.State.Score)
	assert.Equal(t, 2, res.State.Lines)
	assert.Equal(t, 0, g.Board().Filled())
}

func TestLevelUpChangesInterval(t *testing.T) {
	g := newTestGame(t)
	g.progress.Lines = 9
	fillRow(g.board, 19, core.ColorRed, 4, 5)
	g.current = Spawn(NewShape(KindO), 10)

	res := g.HardDrop()

	assert.Equal(t, 1, res.Cleared)
	assert.True(t, res.IntervalChanged)
	assert.Equal(t, 650*time.Millisecond, res.Interval)
	assert.Equal(t, 650*time.Millisecond, g.FallInterval())
	assert.Equal(t, core.GameState{Score: 100, Level: 2, Lines: 10}, res.State)
	// The top half of the O settles into the bottom row.
	assert.Equal(t, 2, g.Board().Filled())
	c, _ := g.Board().At(4, 19)
	assert.Equal(t, core.ColorYellow, c)
}

func TestGameOverWhenSpawnCollides(t *testing.T) {
	g := newTestGame(t)
	g.board.Set(4, 1, core.ColorRed)
	g.current = Piece{Shape: NewShape(KindO), X: 0, Y: 0}
	g.next = Spawn(NewShape(KindO), 10)

	res := g.HardDrop()

	assert.True(t, res.Locked)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, StatusGameOver, g.Status())
}

func TestNoGameOverWhenSpawnFits(t *testing.T) {
	g := newTestGame(t)
	g.board.Set(0, 0, core.ColorRed)
	g.current = Piece{Shape: NewShape(KindO), X: 8, Y: 0}
	g.next = Spawn(NewShape(KindO), 10)

	res := g.HardDrop()

	assert.True(t, res.Locked)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, StatusActive, g.Status())
}

func TestPausedIgnoresCommands(t *testing.T) {
	g := newTestGame(t)
	require.True(t, g.TogglePause())
	assert.True(t, g.State().Paused)

	before := g.Current()
	assert.False(t, g.Move(1))
	assert.False(t, g.RotateCW())
	assert.False(t, g.RotateCCW())
	g.SetSoftDrop(true)
	assert.False(t, g.SoftDropHeld())

	res := g.Gravity()
	assert.False(t, res.Locked)
	res = g.HardDrop()
	assert.False(t, res.Locked)

	assert.Equal(t, before, g.Current())
	assert.Equal(t, uint64(0), g.Snapshot().Tick)

	g.Apply(core.ActionPause)
	assert.Equal(t, StatusActive, g.Status())
}

func TestSoftDropReleaseAcceptedWhilePaused(t *testing.T) {
	g := newTestGame(t)
	g.SetSoftDrop(true)
	g.TogglePause()

	g.Apply(core.ActionSoftDropStop)
	assert.False(t, g.SoftDropHeld())
}

func TestGameOverIgnoresCommands(t *testing.T) {
	g := newTestGame(t)
	g.status = StatusGameOver
	before := g.Current()

	assert.False(t, g.Move(-1))
	assert.False(t, g.TogglePause())
	g.Apply(core.ActionPause)
	g.Gravity()
	g.HardDrop()

	assert.Equal(t, StatusGameOver, g.Status())
	assert.Equal(t, before, g.Current())
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.progress.Score = 500

	res := g.Apply(core.ActionRestart)
	assert.Equal(t, 500, res.State.Score, "restart ignored while active")

	g.board.Set(0, 19, core.ColorRed)
	g.progress = Progress{Score: 900, Lines: 30, Level: 4, Interval: 550 * time.Millisecond}
	g.status = StatusGameOver

	res = g.Apply(core.ActionRestart)
	assert.True(t, res.IntervalChanged)
	assert.Equal(t, 700*time.Millisecond, res.Interval)
	assert.Equal(t, core.GameState{Level: 1}, res.State)
	assert.Equal(t, StatusActive, g.Status())
	assert.Equal(t, 0, g.Board().Filled())
}

func TestStepAppliesActionsInOrder(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	frame := core.NewInputFrame()
	frame.Set(core.ActionMoveLeft)
	frame.Set(core.ActionMoveLeft)
	frame.Set(core.ActionRotateCW)
	frame.Set(core.ActionMoveRight)
	g1.Step(frame)

	g2.Move(-1)
	g2.Move(-1)
	g2.RotateCW()
	g2.Move(1)

	assert.Equal(t, g2.Current(), g1.Current())
}

func TestStepReportsLock(t *testing.T) {
	g := newTestGame(t)
	frame := core.NewInputFrame()
	frame.Set(core.ActionHardDrop)
	frame.Set(core.ActionMoveLeft)

	res := g.Step(frame)
	assert.True(t, res.Locked)
	assert.Equal(t, 4, g.Board().Filled())
}

func TestResizeTooSmallPauses(t *testing.T) {
	g := newTestGame(t)

	g.Resize(20, 10)
	assert.Equal(t, StatusPaused, g.Status())
	assert.True(t, g.Snapshot().TooSmall)
	assert.False(t, g.TogglePause(), "cannot resume while too small")

	g.Resize(80, 24)
	assert.Equal(t, StatusPaused, g.Status(), "growing the window does not resume")
	assert.True(t, g.TogglePause())
	assert.Equal(t, StatusActive, g.Status())
}

func TestRegisteredInRegistry(t *testing.T) {
	require.True(t, registry.Exists(GameID))
	assert.Equal(t, "Blocks", registry.Title(GameID))

	g, err := registry.Create(GameID)
	require.NoError(t, err)
	_, ok := g.(*Game)
	assert.True(t, ok)
	_, ok = g.(registry.Ticker)
	assert.True(t, ok)
	_, ok = g.(registry.Resizer)
	assert.True(t, ok)
}

func TestLoadConfigWithPresetAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  cols: 12\n"), 0o600))

	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Cols)
	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 400*time.Millisecond, cfg.InitialFallInterval)
	assert.Equal(t, 60*time.Millisecond, cfg.SpeedFloor)
	assert.Equal(t, 500*time.Millisecond, cfg.SoftDropRelease)
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	SetDifficultyPreset("insane")
	t.Cleanup(func() { SetDifficultyPreset("") })

	_, err := LoadConfig()
	assert.Error(t, err)
}
