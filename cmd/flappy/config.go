package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search
order and the --difficulty override are applied.

Search order:
  --config <path>
  ~/.flappy/flappy.yaml, ~/.flappy/flappy.toml
  ./configs/flappy.yaml, ./configs/flappy.toml
  built-in defaults

Examples:
  flappy config
  flappy config --format toml > ~/.flappy/flappy.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	out, err := config.Encode(cfg, flagConfigFormat)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(out)
	return err
}
