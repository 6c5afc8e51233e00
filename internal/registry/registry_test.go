package registry

import (
	"testing"

	"github.com/vovakirdan/launchland/internal/config"
)

func TestBuiltinPresetsRegistered(t *testing.T) {
	want := []string{"classic", "slippery", "steep", "zen"}
	list := List()
	if len(list) != len(want) {
		t.Fatalf("List() returned %d presets, expected %d", len(list), len(want))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].ID, id)
		}
		if list[i].Title == "" || list[i].Description == "" {
			t.Errorf("preset %q missing title or description", id)
		}
	}
	if !Exists(DefaultPreset) {
		t.Errorf("default preset %q not registered", DefaultPreset)
	}
}

func TestApplyPresets(t *testing.T) {
	base := config.DefaultLaunchConfig()

	tests := []struct {
		id    string
		check func(t *testing.T, cfg config.LaunchConfig)
	}{
		{"", func(t *testing.T, cfg config.LaunchConfig) {
			if cfg != base {
				t.Error("empty preset should leave config unchanged")
			}
		}},
		{"classic", func(t *testing.T, cfg config.LaunchConfig) {
			if cfg != base {
				t.Error("classic should match defaults")
			}
		}},
		{"slippery", func(t *testing.T, cfg config.LaunchConfig) {
			if cfg.Terrain.Mix.LowBelow != 80 {
				t.Errorf("LowBelow = %d, expected 80", cfg.Terrain.Mix.LowBelow)
			}
		}},
		{"steep", func(t *testing.T, cfg config.LaunchConfig) {
			s := config.NewStageScaler(cfg.Difficulty, cfg.Terrain)
			if !s.TiltAllowed(1) {
				t.Error("steep should tilt at stage 1")
			}
		}},
		{"zen", func(t *testing.T, cfg config.LaunchConfig) {
			if cfg.Difficulty.Enabled || cfg.Launch.MaxJumps != 3 {
				t.Errorf("zen config = %+v", cfg)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			cfg, err := Apply(tc.id, base)
			if err != nil {
				t.Fatalf("Apply(%q) failed: %v", tc.id, err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	base := config.DefaultLaunchConfig()
	if _, err := Apply("zen", base); err != nil {
		t.Fatal(err)
	}
	if base != config.DefaultLaunchConfig() {
		t.Error("Apply mutated its input")
	}
}

func TestApplyUnknown(t *testing.T) {
	if _, err := Apply("nope", config.DefaultLaunchConfig()); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(Preset{ID: "classic"})
}
