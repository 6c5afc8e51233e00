// Package registry provides a global registry of named tuning presets.
// Presets register themselves in init() functions, allowing the CLI and
// frontends to discover and apply them without hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/launchland/internal/config"
)

// Preset is a named variant of the default tuning.
// Every variant runs the same loop; only configuration differs.
type Preset struct {
	// ID is a unique identifier (e.g., "classic", "steep").
	// Used for CLI flags and stored with recorded runs.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown by the presets command.
	Description string

	// Apply mutates a configuration in place.
	Apply func(cfg *config.LaunchConfig)
}

// Info contains metadata about a registered preset.
type Info struct {
	ID          string
	Title       string
	Description string
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if p.Apply == nil {
		p.Apply = func(*config.LaunchConfig) {}
	}
	presets[p.ID] = p
}

// List returns information about all registered presets, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(presets))
	for _, p := range presets {
		result = append(result, Info{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// Apply returns a copy of base with the named preset applied.
// An empty ID leaves base unchanged.
func Apply(id string, base config.LaunchConfig) (config.LaunchConfig, error) {
	if id == "" {
		return base, nil
	}
	p, err := Get(id)
	if err != nil {
		return base, err
	}
	cfg := base
	p.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("registry: preset %q: %w", id, err)
	}
	return cfg, nil
}
