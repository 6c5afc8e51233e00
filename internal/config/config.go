// Package config provides YAML-based tuning for the launch simulation and
// stage-based difficulty scaling.
package config

import "fmt"

// LaunchConfig contains all tuning for a launch session.
type LaunchConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Launch      LaunchParams      `yaml:"launch"`
	Terrain     TerrainConfig     `yaml:"terrain"`
	Camera      CameraConfig      `yaml:"camera"`
	Progression ProgressionConfig `yaml:"progression"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Debug       DebugConfig       `yaml:"debug"`
}

// WorldConfig defines the physics world and viewport width.
type WorldConfig struct {
	Width              float64 `yaml:"width"`        // Visible world width in meters
	Gravity            float64 `yaml:"gravity"`      // Vertical gravity (negative is down)
	BoostFactor        float64 `yaml:"boost_factor"` // Gravity multiplier while boost is held
	TimeStep           float64 `yaml:"time_step"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	HalfSize    float64 `yaml:"half_size"`
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

// LaunchParams defines the drag-to-launch control law.
type LaunchParams struct {
	MaxDrag         float64 `yaml:"max_drag"`
	ForceMultiplier float64 `yaml:"force_multiplier"`
	MaxJumps        int     `yaml:"max_jumps"`
}

// TerrainConfig defines ground segment generation and retirement.
type TerrainConfig struct {
	SegmentHeight     float64        `yaml:"segment_height"`
	MinWidth          float64        `yaml:"min_width"`
	MaxWidth          float64        `yaml:"max_width"`
	MinY              float64        `yaml:"min_y"`
	MaxY              float64        `yaml:"max_y"`
	GapMin            float64        `yaml:"gap_min"`
	GapMax            float64        `yaml:"gap_max"`
	GenerateDistance  float64        `yaml:"generate_distance"`
	RemoveDistance    float64        `yaml:"remove_distance"`
	FallbackHalfWidth float64        `yaml:"fallback_half_width"` // Used when a segment has no metadata
	Start             StartPlatform  `yaml:"start"`
	Friction          FrictionValues `yaml:"friction"`
	Mix               FrictionMix    `yaml:"mix"`
}

// StartPlatform is the segment under the player at session start.
type StartPlatform struct {
	X     float64 `yaml:"x"` // Center
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// FrictionValues are the physical friction coefficients per class.
type FrictionValues struct {
	Normal float64 `yaml:"normal"`
	High   float64 `yaml:"high"`
	Low    float64 `yaml:"low"`
}

// FrictionMix defines the weighted friction draw. A roll r in [0, 100)
// picks High when r < HighBelow (once allowed by stage), Low when
// r < LowBelow, and Normal otherwise.
type FrictionMix struct {
	HighBelow      int     `yaml:"high_below"`
	LowBelow       int     `yaml:"low_below"`
	HighTiltChance float64 `yaml:"high_tilt_chance"`
	TiltChance     float64 `yaml:"tilt_chance"`
}

// CameraConfig defines camera follow and the fall-out margin.
type CameraConfig struct {
	LeadFraction float64 `yaml:"lead_fraction"` // Lead offset as a fraction of world width
	Smoothing    float64 `yaml:"smoothing"`     // Per-frame follow fraction
	FallMargin   float64 `yaml:"fall_margin"`
}

// ProgressionConfig defines scoring and stages.
type ProgressionConfig struct {
	ScorePerStage int `yaml:"score_per_stage"`
	LandingScore  int `yaml:"landing_score"`
	ClearScore    int `yaml:"clear_score"` // 0 disables clearing
}

// DifficultyConfig defines how terrain parameters scale with stage.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	FixedStage        int     `yaml:"fixed_stage"` // Stage used for terrain when scaling is disabled
	HighFrictionStage int     `yaml:"high_friction_stage"`
	TiltStage         int     `yaml:"tilt_stage"`
	TiltBase          float64 `yaml:"tilt_base"`      // Max tilt at TiltStage, radians
	TiltPerStage      float64 `yaml:"tilt_per_stage"` // Added per stage past TiltStage
	TiltMax           float64 `yaml:"tilt_max"`
	GapPerStage       float64 `yaml:"gap_per_stage"` // Added to GapMax per stage past 1
	GapMaxCap         float64 `yaml:"gap_max_cap"`
}

// DebugConfig toggles strict checks.
type DebugConfig struct {
	StrictGeneration bool `yaml:"strict_generation"` // Fail instead of clamping bad terrain draws
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
