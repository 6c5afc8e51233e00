package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/registry"
)

// loadConfig resolves the config file, difficulty and preset flags.
func loadConfig() (config.LaunchConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	difficulty, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficulty)

	if !registry.Exists(flagPreset) {
		return cfg, fmt.Errorf("unknown preset %q (run 'launchland presets')", flagPreset)
	}
	return registry.Apply(flagPreset, cfg)
}

// newLogger builds the diagnostics logger. Without --log, output goes to
// fallback, which is io.Discard while a TUI owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "launchland",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

func difficultyName() string {
	if flagDifficulty == "" {
		return string(config.DifficultyNormal)
	}
	return flagDifficulty
}
