package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of blocks.

Controls:
  Left/Right, A/D  - Move
  Up, X            - Rotate clockwise
  Z                - Rotate counter-clockwise
  Down, S          - Soft drop (hold)
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, speeds up every level
  normal - Config values as loaded
  hard   - Faster start and a lower speed floor
  fixed  - No speed-up, level 1 speed forever

Examples:
  blocks play
  blocks play --difficulty hard
  blocks play --seed 42
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset")
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	final, err := playOnce(store, logger, flagDifficulty, runtimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	printSummary(final.State())
}

// playOnce creates a game with the current config flags and runs it until
// the player quits.
func playOnce(store *storage.Store, logger *log.Logger, difficulty string, cfg core.RuntimeConfig) (tui.Model, error) {
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(difficulty)

	game, err := registry.Create(blocks.GameID)
	if err != nil {
		return tui.Model{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "difficulty", difficulty)

	return tui.Run(game, cfg, tui.Options{Store: store, Logger: logger})
}

func printSummary(st core.GameState) {
	if st.Score == 0 && st.Lines == 0 {
		return
	}
	fmt.Printf("Score %s  |  Level %d  |  Lines %d\n", humanize.Comma(int64(st.Score)), st.Level, st.Lines)
}
