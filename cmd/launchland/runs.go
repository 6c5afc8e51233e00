package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/launchland/internal/platform/tui"
	"github.com/vovakirdan/launchland/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsAll    bool
	flagRunsRecent bool
	flagRunsBrowse bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Show the best recorded runs for a preset, or the most recent ones.

Examples:
  launchland runs                  # Top runs for the current --preset
  launchland runs --all            # Top runs across presets
  launchland runs --recent -n 20   # Latest 20 runs
  launchland runs --browse         # Interactive table
  launchland runs --clear          # Delete every recorded run`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsAll, "all", false, "Include every preset")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Order by recency instead of score")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive runs browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRunsClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	case flagRunsBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRuns(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	title := ""
	if flagRunsRecent {
		runs, err = store.RecentRuns(flagRunsLimit)
		title = "Recent runs"
	} else {
		preset := flagPreset
		title = fmt.Sprintf("Top runs (%s)", preset)
		if flagRunsAll {
			preset = ""
			title = "Top runs (all presets)"
		}
		runs, err = store.TopRuns(preset, flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Play with 'launchland play' or record with 'launchland sim --record'.")
		return
	}

	fmt.Printf("%s\n\n", title)
	fmt.Printf("%-4s %-8s %-5s %-10s %7s %6s %8s %-8s %s\n",
		"#", "PRESET", "FROM", "DIFFICULTY", "SCORE", "STAGE", "MAX X", "END", "DATE")
	for i, r := range runs {
		fmt.Printf("%-4d %-8s %-5s %-10s %7d %6d %8.1f %-8s %s\n",
			i+1, r.Preset, r.Source, r.Difficulty, r.Score, r.Stage, r.MaxX, r.Reason,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil || len(stats) == 0 {
		return
	}
	fmt.Println()
	for _, s := range stats {
		if !flagRunsAll && s.Preset != flagPreset {
			continue
		}
		fmt.Printf("%s: %d runs, best %d, avg score %.0f, avg stage %.1f\n",
			s.Preset, s.Runs, s.BestScore, s.AvgScore, s.AvgStage)
	}
}
