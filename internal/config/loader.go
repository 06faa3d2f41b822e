package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the blocks configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
//
// Files are applied on top of the defaults, so a file may set only the fields
// it wants to change. The result is validated.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("blocks.yaml"), filepath.Join("configs", "blocks.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultBlocksConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return candidate, candidate.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlocksYAML, &cfg); err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}
