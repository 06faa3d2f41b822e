package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var flagCheckConfig string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML, or check a file.

Save the output to ~/.blocks/configs/blocks.yaml or ./configs/blocks.yaml
and edit it to change board size, timing and progression.

Examples:
  blocks config > ~/.blocks/configs/blocks.yaml
  blocks config --check ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheckConfig, "check", "", "Validate a config file instead of printing the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheckConfig == "" {
		os.Stdout.Write(config.GetDefaultYAML(blocks.GameID))
		return
	}

	settings, err := config.LoadBlocks(flagCheckConfig)
	if err == nil {
		err = blocks.FromSettings(settings).Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok (%dx%d board, %s initial fall)\n",
		flagCheckConfig, settings.Board.Cols, settings.Board.Rows, settings.Timing.InitialFall)
}
