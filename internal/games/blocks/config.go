package blocks

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// Config holds the engine constants. Every field may be overridden; Validate
// rejects combinations that would produce undefined geometry or timing.
type Config struct {
	Cols                int
	Rows                int
	InitialFallInterval time.Duration
	SpeedStep           time.Duration
	SpeedFloor          time.Duration
	LinesPerLevel       int
	SoftDropSteps       int // gravity steps per tick while soft drop is held

	// How long soft drop stays held after the last key event. Terminals
	// report no key release, so the platform synthesizes one.
	SoftDropRelease time.Duration
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() Config {
	return Config{
		Cols:                10,
		Rows:                20,
		InitialFallInterval: 700 * time.Millisecond,
		SpeedStep:           50 * time.Millisecond,
		SpeedFloor:          100 * time.Millisecond,
		LinesPerLevel:       10,
		SoftDropSteps:       5,
		SoftDropRelease:     500 * time.Millisecond,
	}
}

// FromSettings converts loaded YAML settings into an engine config.
func FromSettings(s config.BlocksConfig) Config {
	return Config{
		Cols:                s.Board.Cols,
		Rows:                s.Board.Rows,
		InitialFallInterval: s.Timing.InitialFall,
		SpeedStep:           s.Timing.SpeedStep,
		SpeedFloor:          s.Timing.SpeedFloor,
		LinesPerLevel:       s.Progression.LinesPerLevel,
		SoftDropSteps:       s.Progression.SoftDropSteps,
		SoftDropRelease:     s.Timing.SoftDropRelease,
	}
}

// Validate checks that the board can hold every spawn orientation and that
// all timing values are usable.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Cols, c.Rows)
	}
	if w, h := maxSpawnSize(); c.Cols < w || c.Rows < h {
		return fmt.Errorf("%w: %dx%d cannot hold a %dx%d shape", ErrInvalidDimensions, c.Cols, c.Rows, w, h)
	}
	if c.InitialFallInterval <= 0 || c.SpeedFloor <= 0 {
		return fmt.Errorf("%w: fall interval and speed floor must be positive", ErrInvalidTiming)
	}
	if c.SpeedStep < 0 {
		return fmt.Errorf("%w: negative speed step %s", ErrInvalidTiming, c.SpeedStep)
	}
	if c.LinesPerLevel <= 0 {
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidTiming, c.LinesPerLevel)
	}
	if c.SoftDropRelease <= 0 {
		return fmt.Errorf("%w: soft drop release must be positive, got %s", ErrInvalidTiming, c.SoftDropRelease)
	}
	if c.SoftDropSteps <= 0 {
		return fmt.Errorf("%w: soft drop steps must be positive, got %d", ErrInvalidTiming, c.SoftDropSteps)
	}
	return nil
}

// Policy returns the scoring and speed policy described by c.
func (c Config) Policy() Policy {
	return Policy{
		InitialInterval: c.InitialFallInterval,
		SpeedStep:       c.SpeedStep,
		SpeedFloor:      c.SpeedFloor,
		LinesPerLevel:   c.LinesPerLevel,
	}
}
