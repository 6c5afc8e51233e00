package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/platform/tui"
	"github.com/vovakirdan/launchland/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Requires a terminal with mouse support.

Controls:
  Mouse drag  - Press on the box, drag back, release to launch
  Space       - Boost gravity (held via key repeat)
  P/Esc       - Pause
  R           - Restart
  Ctrl+S      - Save a text screenshot to ~/.launchland/screenshots
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  launchland play
  launchland play --preset slippery
  launchland play --seed 42 --log /tmp/launchland.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record finished runs")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rt,
		Preset:     flagPreset,
		Difficulty: difficultyName(),
		Store:      store,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
