package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, then Play. After a game you return to
the menu. High Scores opens the leaderboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  blocks menu
  blocks menu --difficulty hard
  blocks menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu(store, blocks.GameID, difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.MenuChoicePlay:
			// A fixed --seed replays the same game; otherwise every game is new.
			if _, err := playOnce(store, logger, difficulty, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, blocks.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
