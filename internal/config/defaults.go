package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/launchland.yaml
var defaultLaunchYAML []byte

// DefaultLaunchConfig returns the built-in tuning.
func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		World: WorldConfig{
			Width:              20,
			Gravity:            -5,
			BoostFactor:        2,
			TimeStep:           1.0 / 60.0,
			VelocityIterations: 6,
			PositionIterations: 2,
		},
		Player: PlayerConfig{
			StartX:      2,
			StartY:      5,
			HalfSize:    0.4,
			Density:     1,
			Friction:    0.5,
			Restitution: 0.1,
		},
		Launch: LaunchParams{
			MaxDrag:         3,
			ForceMultiplier: 100,
			MaxJumps:        2,
		},
		Terrain: TerrainConfig{
			SegmentHeight:     0.5,
			MinWidth:          1.5,
			MaxWidth:          4,
			MinY:              1,
			MaxY:              6,
			GapMin:            1,
			GapMax:            3,
			GenerateDistance:  20,
			RemoveDistance:    25,
			FallbackHalfWidth: 2,
			Start: StartPlatform{
				X:     2,
				Y:     2,
				Width: 4,
			},
			Friction: FrictionValues{
				Normal: 0.6,
				High:   100,
				Low:    0.05,
			},
			Mix: FrictionMix{
				HighBelow:      20,
				LowBelow:       50,
				HighTiltChance: 0.4,
				TiltChance:     0.3,
			},
		},
		Camera: CameraConfig{
			LeadFraction: 0.25,
			Smoothing:    0.1,
			FallMargin:   2,
		},
		Progression: ProgressionConfig{
			ScorePerStage: 1000,
			LandingScore:  100,
			ClearScore:    0,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			FixedStage:        1,
			HighFrictionStage: 2,
			TiltStage:         2,
			TiltBase:          math.Pi / 12,
			TiltPerStage:      math.Pi / 24,
			TiltMax:           math.Pi / 6,
			GapPerStage:       0.25,
			GapMaxCap:         5,
		},
	}
}
