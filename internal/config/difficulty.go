package config

import "math"

// StageScaler derives terrain generation parameters from the current stage.
type StageScaler struct {
	cfg     DifficultyConfig
	terrain TerrainConfig
}

// NewStageScaler creates a scaler for the given difficulty and terrain tuning.
func NewStageScaler(cfg DifficultyConfig, terrain TerrainConfig) *StageScaler {
	return &StageScaler{
		cfg:     cfg,
		terrain: terrain,
	}
}

// IsEnabled returns whether stage progression affects terrain.
func (s *StageScaler) IsEnabled() bool {
	return s.cfg.Enabled
}

// EffectiveStage returns the stage terrain should be generated for.
// With scaling disabled the configured fixed stage is used instead.
func (s *StageScaler) EffectiveStage(stage int) int {
	if !s.cfg.Enabled {
		stage = s.cfg.FixedStage
	}
	if stage < 1 {
		return 1
	}
	return stage
}

// HighFrictionAllowed reports whether high-friction segments may appear.
func (s *StageScaler) HighFrictionAllowed(stage int) bool {
	return s.EffectiveStage(stage) >= s.cfg.HighFrictionStage
}

// TiltAllowed reports whether segments may be tilted at all.
func (s *StageScaler) TiltAllowed(stage int) bool {
	return s.MaxTilt(stage) > 0
}

// MaxTilt returns the maximum absolute segment angle in radians.
// It is zero below the tilt stage and grows per stage up to TiltMax.
func (s *StageScaler) MaxTilt(stage int) float64 {
	st := s.EffectiveStage(stage)
	if st < s.cfg.TiltStage {
		return 0
	}
	tilt := s.cfg.TiltBase + s.cfg.TiltPerStage*float64(st-s.cfg.TiltStage)
	return clampF(tilt, 0, s.cfg.TiltMax)
}

// GapRange returns the [min, max] horizontal gap between segments.
// The upper bound widens per stage and is capped.
func (s *StageScaler) GapRange(stage int) (float64, float64) {
	st := s.EffectiveStage(stage)
	lo, hi := s.terrain.GapMin, s.terrain.GapMax
	widened := hi + s.cfg.GapPerStage*float64(st-1)
	limit := math.Max(hi, s.cfg.GapMaxCap)
	return lo, clampF(widened, hi, limit)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
