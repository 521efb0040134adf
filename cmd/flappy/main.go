// flappy is a Flappy Bird clone that runs in the terminal, with an optional
// pixel window.
//
// Usage:
//
//	flappy            - Pick a difficulty, then play in the terminal
//	flappy play       - Play in the terminal right away
//	flappy window     - Play in a pixel window (build with -tags ebiten)
//	flappy sim        - Run a headless simulation and print the final frame
//	flappy config     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <name>   - Start on easy, medium or hard
//	--log-file <path>     - Log destination (default: ~/.flappy/flappy.log)
//	--debug               - Log per-tick events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Keep the bird in the air and fly it through the gaps.

Without a subcommand a start menu asks for the difficulty, unless
--difficulty is given.

Available commands:
  play     - Play in the terminal right away
  window   - Play in a pixel window
  sim      - Headless simulation for testing configs
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --difficulty hard
  flappy play --config ./my-flappy.toml
  flappy sim --ticks 600 --flap-every 18 --seed 42`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
