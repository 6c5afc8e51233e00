package game

import (
	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
)

// CameraRig follows the player horizontally with per-frame exponential
// smoothing. Vertical position is fixed at the middle of the world.
type CameraRig struct {
	X, Y float64

	worldW, worldH float64
	lead           float64
	smoothing      float64
	margin         float64
}

// NewCameraRig creates a camera at (lead, worldH/2).
func NewCameraRig(cfg config.CameraConfig, worldW, worldH float64) *CameraRig {
	lead := worldW * cfg.LeadFraction
	return &CameraRig{
		X:         lead,
		Y:         worldH / 2,
		worldW:    worldW,
		worldH:    worldH,
		lead:      lead,
		smoothing: cfg.Smoothing,
		margin:    cfg.FallMargin,
	}
}

// Update eases X toward playerX + lead by a fixed fraction per frame.
func (c *CameraRig) Update(playerX float64) {
	target := playerX + c.lead
	c.X += (target - c.X) * c.smoothing
}

// FellOut reports whether the player dropped below the visible area by more
// than the margin.
func (c *CameraRig) FellOut(playerY float64) bool {
	return playerY < c.Y-c.HalfHeight()-c.margin
}

// Resize changes the visible world height, keeping the camera centered on it.
func (c *CameraRig) Resize(worldH float64) {
	c.worldH = worldH
	c.Y = worldH / 2
}

// HalfWidth returns half the visible world width.
func (c *CameraRig) HalfWidth() float64 {
	return c.worldW / 2
}

// HalfHeight returns half the visible world height.
func (c *CameraRig) HalfHeight() float64 {
	return c.worldH / 2
}

// Viewport returns the projection for a screen of the given size.
func (c *CameraRig) Viewport(screenW, screenH int) core.Viewport {
	return core.Viewport{
		CenterX: c.X,
		CenterY: c.Y,
		WorldW:  c.worldW,
		WorldH:  c.worldH,
		ScreenW: float64(screenW),
		ScreenH: float64(screenH),
	}
}
