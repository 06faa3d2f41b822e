// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks play              - Play a game
//	blocks menu              - Start menu with difficulty picker and high scores
//	blocks scores            - Show high scores
//	blocks list              - List available games
//	blocks config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.blocks/scores.db)
//	--log-file <path>   - Write logs to a file (the terminal belongs to the game)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks is a terminal falling-block puzzle game: steer and rotate
the falling pieces, complete rows to clear them, and survive as the
pieces fall faster every level.

Available commands:
  play     - Start a game directly
  menu     - Start menu with difficulty picker and high scores
  scores   - View high scores
  list     - Show available games
  config   - Print the default configuration

Examples:
  blocks play
  blocks play --difficulty hard
  blocks menu
  blocks scores --all`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the session logger and a function that closes its file.
// Without --log-file logs are discarded, since the game owns the terminal.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
