package game

import (
	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/physics"
)

// SegmentView is a ground segment as seen by a renderer.
type SegmentView struct {
	ID       physics.BodyID
	Center   core.Vec
	Width    float64
	Height   float64
	Angle    float64
	Friction physics.FrictionClass
	Color    core.Color
	Touched  bool
	Unknown  bool // No generation metadata; drawn with fallback size
}

// PlayerView is the player as seen by a renderer.
type PlayerView struct {
	Position  core.Vec
	Velocity  core.Vec
	Angle     float64
	HalfSize  float64
	JumpCount int
	MaxJumps  int
	Dragging  bool
}

// Snapshot is an immutable per-frame render state.
type Snapshot struct {
	Frame    int
	Segments []SegmentView
	Player   PlayerView
	Drag     *DragIndicator // nil unless dragging
	View     core.Viewport
	Score    int
	Stage    int
	Paused   bool
	Cleared  bool
	GameOver bool
	Boosting bool
}

// Corners returns the four corners of a rotated box in world space,
// counter-clockwise from bottom-left.
func Corners(center core.Vec, halfW, halfH, angle float64) [4]core.Vec {
	local := [4]core.Vec{
		core.V(-halfW, -halfH),
		core.V(halfW, -halfH),
		core.V(halfW, halfH),
		core.V(-halfW, halfH),
	}
	var out [4]core.Vec
	for i, p := range local {
		out[i] = center.Add(p.Rotate(angle))
	}
	return out
}

// Contains reports whether a world point lies inside the segment.
func (s SegmentView) Contains(p core.Vec) bool {
	local := p.Sub(s.Center).Rotate(-s.Angle)
	return local.X >= -s.Width/2 && local.X <= s.Width/2 &&
		local.Y >= -s.Height/2 && local.Y <= s.Height/2
}

// Contains reports whether a world point lies inside the player box.
func (p PlayerView) Contains(q core.Vec) bool {
	local := q.Sub(p.Position).Rotate(-p.Angle)
	return local.X >= -p.HalfSize && local.X <= p.HalfSize &&
		local.Y >= -p.HalfSize && local.Y <= p.HalfSize
}
