// launchland-desktop runs Launchland in a window.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/platform/desktop"
	"github.com/vovakirdan/launchland/internal/registry"
	"github.com/vovakirdan/launchland/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagPreset     string
	flagDifficulty string
	flagDBPath     string
	flagNoRecord   bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "launchland-desktop",
	Short: "Launchland in a window",
	Long: `Play Launchland in a desktop window.

Controls:
  Mouse drag  - Press on the box, drag back, release to launch
  Space       - Boost gravity while held
  P/Esc       - Pause
  R           - Restart
  Q           - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run:          run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagPreset, "preset", registry.DefaultPreset, "Tuning preset")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.launchland/runs.db", "Path to runs database")
	rootCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record finished runs")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, difficulty)
	cfg, err = registry.Apply(flagPreset, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = io.Discard
	if flagVerbose {
		out = os.Stderr
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "launchland",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
			store = nil
		}
	}

	runErr := desktop.Run(desktop.Options{
		Config:     cfg,
		Seed:       flagSeed,
		TickRate:   flagFPS,
		Preset:     flagPreset,
		Difficulty: string(difficulty),
		Store:      store,
		Logger:     logger,
	})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
