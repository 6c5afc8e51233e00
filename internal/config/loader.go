package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "launchland.yaml"

// Load loads the launch configuration. Files are decoded over the defaults,
// so partial overrides are allowed.
// Search order: customPath -> ~/.launchland/configs/launchland.yaml -> ./configs/launchland.yaml -> embedded default
func Load(customPath string) (LaunchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLaunchConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultLaunchConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLaunchYAML)
	if err != nil {
		return DefaultLaunchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (LaunchConfig, error) {
	cfg := DefaultLaunchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg LaunchConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".launchland", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LaunchConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust terrain scaling based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Launch.MaxJumps = 3
		cfg.Difficulty.TiltMax = cfg.Difficulty.TiltBase
		cfg.Difficulty.GapPerStage = 0.1
		cfg.Camera.FallMargin = 4
	case DifficultyHard:
		cfg.Difficulty.HighFrictionStage = 1
		cfg.Difficulty.TiltStage = 1
		cfg.Difficulty.GapPerStage = 0.5
		cfg.Difficulty.GapMaxCap = 6
		cfg.Terrain.Mix.TiltChance = 0.45
	}
}
