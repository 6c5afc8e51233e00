// launchland is a physics launch-and-land arcade game for the terminal.
//
// Usage:
//
//	launchland play          - Play in the terminal (mouse drag to launch)
//	launchland sim           - Run the autopilot headless and print a summary
//	launchland runs          - Show recorded runs
//	launchland config        - Print the effective configuration as YAML
//	launchland presets       - List tuning presets
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible terrain
//	--config <path>        - Custom config YAML
//	--preset <id>          - Tuning preset (default: classic)
//	--difficulty <level>   - easy, normal, hard, fixed
//	--db <path>            - Runs database (default: ~/.launchland/runs.db)
//	--log <path>           - Write logs to a file
//	--log-level <level>    - debug, info, warn, error
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
	flagPreset     string
	flagDifficulty string
	flagDBPath     string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "launchland",
	Short: "Launchland - fling a box across endless platforms",
	Long: `Launchland is a physics arcade game. Drag back from the box and release
to launch it; land on platforms to score. Every 1000 points raises the
stage: slippery and sticky platforms appear, and platforms start to tilt.

Available commands:
  play     - Play in the terminal
  sim      - Run the autopilot headless
  runs     - Show recorded runs
  config   - Print the effective configuration
  presets  - List tuning presets

Examples:
  launchland play
  launchland play --preset steep --difficulty hard
  launchland sim --frames 36000 --seed 42 --record
  launchland runs --preset classic
  launchland config --preset zen`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "classic", "Tuning preset (see 'launchland presets')")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.launchland/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}
