package registry

import (
	"math"

	"github.com/vovakirdan/launchland/internal/config"
)

// DefaultPreset is used when no preset is requested.
const DefaultPreset = "classic"

func init() {
	Register(Preset{
		ID:          "classic",
		Title:       "Classic",
		Description: "Default tuning",
	})

	Register(Preset{
		ID:          "slippery",
		Title:       "Slippery",
		Description: "Mostly ice, landings slide off",
		Apply: func(cfg *config.LaunchConfig) {
			cfg.Terrain.Friction.Low = 0.02
			cfg.Terrain.Mix.HighBelow = 10
			cfg.Terrain.Mix.LowBelow = 80
		},
	})

	Register(Preset{
		ID:          "steep",
		Title:       "Steep",
		Description: "Tilted platforms from the first stage",
		Apply: func(cfg *config.LaunchConfig) {
			cfg.Difficulty.TiltStage = 1
			cfg.Difficulty.TiltBase = math.Pi / 8
			cfg.Difficulty.TiltMax = math.Pi / 4
			cfg.Terrain.Mix.TiltChance = 0.6
		},
	})

	Register(Preset{
		ID:          "zen",
		Title:       "Zen",
		Description: "No scaling, three jumps, forgiving fall margin",
		Apply: func(cfg *config.LaunchConfig) {
			cfg.Difficulty.Enabled = false
			cfg.Difficulty.FixedStage = 1
			cfg.Launch.MaxJumps = 3
			cfg.Camera.FallMargin = 6
			cfg.Progression.ClearScore = 0
		},
	})
}
