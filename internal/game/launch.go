package game

import (
	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
)

// Launchable is the player body as seen by the launch controller.
type Launchable interface {
	Position() core.Vec
	TestPoint(p core.Vec) bool
	SetLinearVelocity(v core.Vec)
	ApplyForceToCenter(f core.Vec)
}

// LaunchState is the drag state machine state.
type LaunchState int

const (
	LaunchIdle LaunchState = iota
	LaunchDragging
)

// DragIndicator is render-only drag feedback.
type DragIndicator struct {
	Origin core.Vec // Player position when the drag started
	Tip    core.Vec // Origin minus the clamped pointer offset
	Radius float64  // Max drag distance
}

// Launch describes a force applied on release.
type Launch struct {
	Force core.Vec
	Drag  float64 // Clamped drag distance
}

// LaunchController turns press/drag/release into a one-shot force.
type LaunchController struct {
	maxDrag   float64
	forceMult float64
	maxJumps  int

	state     LaunchState
	origin    core.Vec
	pointer   core.Vec
	jumpCount int
}

// NewLaunchController creates an idle controller with a full jump budget.
func NewLaunchController(cfg config.LaunchParams) *LaunchController {
	return &LaunchController{
		maxDrag:   cfg.MaxDrag,
		forceMult: cfg.ForceMultiplier,
		maxJumps:  cfg.MaxJumps,
	}
}

// Update advances the state machine for one frame. pointer is the input
// position already unprojected to world space. It returns the launch
// applied on this frame, if any.
func (c *LaunchController) Update(pressed bool, pointer core.Vec, body Launchable) (Launch, bool) {
	c.pointer = pointer

	if pressed {
		if c.state == LaunchIdle && c.jumpCount < c.maxJumps && body.TestPoint(pointer) {
			c.state = LaunchDragging
			c.origin = body.Position()
		}
		return Launch{}, false
	}

	if c.state != LaunchDragging {
		return Launch{}, false
	}
	c.state = LaunchIdle

	// clamp, scale, zero velocity, apply
	drag := c.origin.Sub(pointer).ClampLen(c.maxDrag)
	force := drag.WithLen(drag.Len() * c.forceMult)
	body.SetLinearVelocity(core.Vec{})
	body.ApplyForceToCenter(force)
	c.jumpCount++

	return Launch{Force: force, Drag: drag.Len()}, true
}

// Cancel abandons a drag without launching.
func (c *LaunchController) Cancel() {
	c.state = LaunchIdle
}

// ResetJumps restores the full jump budget.
func (c *LaunchController) ResetJumps() {
	c.jumpCount = 0
}

// State returns the current state.
func (c *LaunchController) State() LaunchState {
	return c.state
}

// Dragging reports whether a drag is in progress.
func (c *LaunchController) Dragging() bool {
	return c.state == LaunchDragging
}

// JumpCount returns launches since the last landing.
func (c *LaunchController) JumpCount() int {
	return c.jumpCount
}

// MaxJumps returns the jump budget.
func (c *LaunchController) MaxJumps() int {
	return c.maxJumps
}

// Indicator returns the drag feedback geometry while dragging.
func (c *LaunchController) Indicator() (DragIndicator, bool) {
	if c.state != LaunchDragging {
		return DragIndicator{}, false
	}
	offset := c.pointer.Sub(c.origin).ClampLen(c.maxDrag)
	return DragIndicator{
		Origin: c.origin,
		Tip:    c.origin.Sub(offset),
		Radius: c.maxDrag,
	}, true
}
