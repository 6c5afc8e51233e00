package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/game"
	"github.com/vovakirdan/launchland/internal/storage"
)

var (
	flagFrames int
	flagRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless",
	Long: `Play the game with a scripted autopilot, without a display.
Each fall-out starts a new run with the next seed. Prints one line per run.

The same seed, preset and frame count always produce the same runs.

Examples:
  launchland sim
  launchland sim --frames 36000 --seed 42
  launchland sim --preset steep --difficulty hard --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save runs to the database")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagFrames <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --frames must be positive\n")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger.Info("simulating", "frames", flagFrames, "seed", rt.Seed, "preset", flagPreset)
	start := time.Now()
	runs, err := game.Simulate(cfg, rt, flagFrames, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("simulation done", "elapsed", time.Since(start))

	printSimRuns(runs)

	if flagRecord {
		if err := recordSimRuns(runs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nRecorded %d runs to %s\n", len(runs), flagDBPath)
	}
}

func printSimRuns(runs []game.SimRun) {
	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render(fmt.Sprintf("%-4s %-20s %7s %7s %6s %8s %9s %8s %-7s",
		"#", "SEED", "FRAMES", "SCORE", "STAGE", "LANDED", "LAUNCHES", "MAX X", "END")))

	best := 0
	for i, r := range runs {
		st := r.Stats
		end := r.Reason
		if st.Cleared {
			end += " *"
		}
		fmt.Printf("%-4d %-20d %7d %7d %6d %8d %9d %8.1f %-7s\n",
			i+1, st.Seed, st.Frames, st.Score, st.Stage, st.Landings, st.Launches, st.MaxX, end)
		if st.Score > best {
			best = st.Score
		}
	}
	fmt.Printf("\n%d runs, best score %d\n", len(runs), best)
}

func recordSimRuns(runs []game.SimRun) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	for _, r := range runs {
		st := r.Stats
		_, err := store.SaveRun(storage.Run{
			Source:     "sim",
			Preset:     flagPreset,
			Difficulty: difficultyName(),
			Seed:       st.Seed,
			Frames:     st.Frames,
			Score:      st.Score,
			Stage:      st.Stage,
			Cleared:    st.Cleared,
			Landings:   st.Landings,
			Launches:   st.Launches,
			Segments:   st.Segments,
			MaxX:       st.MaxX,
			Reason:     r.Reason,
		})
		if err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
	}
	return nil
}
