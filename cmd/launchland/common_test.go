package main

import (
	"os"
	"path/filepath"
	"testing"
)

func setFlags(t *testing.T, configPath, preset, difficulty string) {
	t.Helper()
	oldConfig, oldPreset, oldDifficulty := flagConfig, flagPreset, flagDifficulty
	t.Cleanup(func() {
		flagConfig, flagPreset, flagDifficulty = oldConfig, oldPreset, oldDifficulty
	})
	flagConfig, flagPreset, flagDifficulty = configPath, preset, difficulty
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchland.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigLayers(t *testing.T) {
	path := writeConfig(t, "world:\n  gravity: -12\n")

	tests := []struct {
		name       string
		preset     string
		difficulty string
		check      func(t *testing.T, enabled bool, maxJumps int, gravity float64)
	}{
		{"classic normal", "classic", "", func(t *testing.T, enabled bool, maxJumps int, gravity float64) {
			if !enabled {
				t.Error("difficulty scaling should be enabled")
			}
			if gravity != -12 {
				t.Errorf("gravity = %v, want -12 from file", gravity)
			}
		}},
		{"fixed difficulty", "classic", "fixed", func(t *testing.T, enabled bool, maxJumps int, gravity float64) {
			if enabled {
				t.Error("fixed difficulty should disable scaling")
			}
		}},
		{"zen preset wins over difficulty", "zen", "hard", func(t *testing.T, enabled bool, maxJumps int, gravity float64) {
			if enabled {
				t.Error("zen should disable scaling")
			}
			if maxJumps != 3 {
				t.Errorf("max jumps = %d, want 3", maxJumps)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, path, tt.preset, tt.difficulty)
			cfg, err := loadConfig()
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			tt.check(t, cfg.Difficulty.Enabled, cfg.Launch.MaxJumps, cfg.World.Gravity)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	path := writeConfig(t, "")

	tests := []struct {
		name       string
		config     string
		preset     string
		difficulty string
	}{
		{"unknown preset", path, "turbo", ""},
		{"unknown difficulty", path, "classic", "brutal"},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), "classic", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, tt.config, tt.preset, tt.difficulty)
			if _, err := loadConfig(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
