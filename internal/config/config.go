// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board       BlocksBoard       `yaml:"board"`
	Timing      BlocksTiming      `yaml:"timing"`
	Progression BlocksProgression `yaml:"progression"`
}

// BlocksBoard defines the playfield size in cells.
type BlocksBoard struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// BlocksTiming defines gravity timing. Values are Go duration strings in YAML.
type BlocksTiming struct {
	InitialFall time.Duration `yaml:"initial_fall"`
	SpeedStep   time.Duration `yaml:"speed_step"`
	SpeedFloor  time.Duration `yaml:"speed_floor"`

	// SoftDropRelease is how long the platform keeps soft drop held after
	// the last soft-drop key event. Terminals report no key releases.
	SoftDropRelease time.Duration `yaml:"soft_drop_release"`
}

// BlocksProgression defines leveling parameters.
type BlocksProgression struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	SoftDropSteps int `yaml:"soft_drop_steps"`
}

// Validate reports the first malformed value.
func (c BlocksConfig) Validate() error {
	switch {
	case c.Board.Cols <= 0 || c.Board.Rows <= 0:
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalidConfig, c.Board.Cols, c.Board.Rows)
	case c.Timing.InitialFall <= 0:
		return fmt.Errorf("%w: timing.initial_fall must be positive", ErrInvalidConfig)
	case c.Timing.SpeedFloor <= 0:
		return fmt.Errorf("%w: timing.speed_floor must be positive", ErrInvalidConfig)
	case c.Timing.SpeedStep < 0:
		return fmt.Errorf("%w: timing.speed_step must not be negative", ErrInvalidConfig)
	case c.Timing.SoftDropRelease <= 0:
		return fmt.Errorf("%w: timing.soft_drop_release must be positive", ErrInvalidConfig)
	case c.Progression.LinesPerLevel <= 0:
		return fmt.Errorf("%w: progression.lines_per_level must be positive", ErrInvalidConfig)
	case c.Progression.SoftDropSteps <= 0:
		return fmt.Errorf("%w: progression.soft_drop_steps must be positive", ErrInvalidConfig)
	}
	return nil
}
