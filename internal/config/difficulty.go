package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlocksPreset adjusts gravity timing for a difficulty preset.
// Normal keeps the loaded values.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.InitialFall = 900 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.InitialFall = 400 * time.Millisecond
		cfg.Timing.SpeedFloor = 60 * time.Millisecond
	case DifficultyFixed:
		cfg.Timing.SpeedStep = 0
	}
	// Keep the floor reachable from the start.
	if cfg.Timing.SpeedFloor > cfg.Timing.InitialFall {
		cfg.Timing.SpeedFloor = cfg.Timing.InitialFall
	}
}
