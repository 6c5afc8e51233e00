package physics

import "github.com/vovakirdan/launchland/internal/core"

// FrictionClass is the surface category of a ground segment.
type FrictionClass int

const (
	FrictionNormal FrictionClass = iota
	FrictionLow
	FrictionHigh
)

// String returns a human-readable name for the class.
func (f FrictionClass) String() string {
	switch f {
	case FrictionNormal:
		return "normal"
	case FrictionLow:
		return "low"
	case FrictionHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Color returns the display color for the class.
func (f FrictionClass) Color() core.Color {
	switch f {
	case FrictionHigh:
		return core.ColorBlack
	case FrictionLow:
		return core.ColorCyan
	default:
		return core.ColorGreen
	}
}

// GroundMeta is the generation record attached to a ground segment.
type GroundMeta struct {
	X, Y        float64 // Center at creation
	Width       float64
	Height      float64
	Angle       float64
	Friction    FrictionClass
	Coefficient float64 // Physical friction coefficient
	Touched     bool    // Set once the player has scored on this segment
}

// Left returns the x-coordinate of the unrotated left edge.
func (m *GroundMeta) Left() float64 {
	return m.X - m.Width/2
}

// Right returns the x-coordinate of the unrotated right edge.
func (m *GroundMeta) Right() float64 {
	return m.X + m.Width/2
}

// Role is the closed set of things a body can be.
// Implementations: PlayerRole, GroundRole.
type Role interface {
	isRole()
}

// PlayerRole marks the launched player body.
type PlayerRole struct{}

// GroundRole marks a ground segment. Meta may be nil for bodies created
// without generation metadata.
type GroundRole struct {
	Meta *GroundMeta
}

func (PlayerRole) isRole() {}
func (GroundRole) isRole() {}
