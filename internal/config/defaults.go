package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BlocksBoard{
			Cols: 10,
			Rows: 20,
		},
		Timing: BlocksTiming{
			InitialFall:     700 * time.Millisecond,
			SpeedStep:       50 * time.Millisecond,
			SpeedFloor:      100 * time.Millisecond,
			SoftDropRelease: 500 * time.Millisecond,
		},
		Progression: BlocksProgression{
			LinesPerLevel: 10,
			SoftDropSteps: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks":
		return defaultBlocksYAML
	default:
		return nil
	}
}
