package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores. The game defaults to blocks.

Examples:
  blocks scores
  blocks scores --limit 25
  blocks scores --all
  blocks scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every saved run")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all saved runs for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := blocks.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blocks list' to see available games.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all %s scores.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blocks play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %10s  %5s  %5s  %8s  %s\n", "Rank", "Score", "Lines", "Level", "Time", "When")
	fmt.Printf("  %-4s  %10s  %5s  %5s  %8s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, e := range scores {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = humanize.Time(e.CreatedAt)
		}
		fmt.Printf("  %-4d  %10s  %5d  %5d  %8s  %s\n",
			i+1, humanize.Comma(int64(e.Score)), e.Lines, e.Level, e.Duration.Round(time.Second), when)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %s  |  Games: %s  |  Average: %s  |  Time played: %s\n",
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(int64(stats.AvgScore)),
		stats.TotalTime.Round(time.Second))
}
