package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a session.
func (c LaunchConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.World.Width > 0, "world.width must be > 0"},
		{c.World.TimeStep > 0, "world.time_step must be > 0"},
		{c.World.BoostFactor > 0, "world.boost_factor must be > 0"},
		{c.World.VelocityIterations > 0, "world.velocity_iterations must be > 0"},
		{c.World.PositionIterations > 0, "world.position_iterations must be > 0"},
		{c.Player.HalfSize > 0, "player.half_size must be > 0"},
		{c.Player.Density > 0, "player.density must be > 0"},
		{c.Launch.MaxDrag > 0, "launch.max_drag must be > 0"},
		{c.Launch.ForceMultiplier > 0, "launch.force_multiplier must be > 0"},
		{c.Launch.MaxJumps >= 1, "launch.max_jumps must be >= 1"},
		{c.Terrain.SegmentHeight > 0, "terrain.segment_height must be > 0"},
		{c.Terrain.MinWidth > 0, "terrain.min_width must be > 0"},
		{c.Terrain.MaxWidth >= c.Terrain.MinWidth, "terrain.max_width must be >= min_width"},
		{c.Terrain.MaxY >= c.Terrain.MinY, "terrain.max_y must be >= min_y"},
		{c.Terrain.GapMin > 0, "terrain.gap_min must be > 0"},
		{c.Terrain.GapMax >= c.Terrain.GapMin, "terrain.gap_max must be >= gap_min"},
		{c.Terrain.FallbackHalfWidth > 0, "terrain.fallback_half_width must be > 0"},
		{c.Terrain.Start.Width > 0, "terrain.start.width must be > 0"},
		{c.Terrain.Mix.HighBelow >= 0 && c.Terrain.Mix.HighBelow <= c.Terrain.Mix.LowBelow && c.Terrain.Mix.LowBelow <= 100,
			"terrain.mix requires 0 <= high_below <= low_below <= 100"},
		{c.Camera.Smoothing > 0 && c.Camera.Smoothing <= 1, "camera.smoothing must be in (0, 1]"},
		{c.Progression.ScorePerStage > 0, "progression.score_per_stage must be > 0"},
		{c.Progression.LandingScore >= 0, "progression.landing_score must be >= 0"},
		{c.Progression.ClearScore >= 0, "progression.clear_score must be >= 0"},
		{c.Difficulty.FixedStage >= 1, "difficulty.fixed_stage must be >= 1"},
		{c.Difficulty.TiltMax >= 0, "difficulty.tilt_max must be >= 0"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}
	return nil
}
