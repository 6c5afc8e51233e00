package core

// Viewport maps between world space (y up, centered on the camera) and
// screen space (y down, origin top-left).
type Viewport struct {
	CenterX, CenterY float64 // Camera position in world units
	WorldW, WorldH   float64 // Visible world extent
	ScreenW, ScreenH float64 // Screen extent in cells or pixels
}

// WorldHeightFor returns the world height that keeps world units square on a
// screen whose units are pixelAspect times taller than wide.
func WorldHeightFor(worldW float64, screenW, screenH int, pixelAspect float64) float64 {
	if screenW <= 0 || screenH <= 0 {
		return worldW
	}
	if pixelAspect <= 0 {
		pixelAspect = 1
	}
	return worldW * float64(screenH) * pixelAspect / float64(screenW)
}

// HalfW returns half the visible world width.
func (v Viewport) HalfW() float64 {
	return v.WorldW / 2
}

// HalfH returns half the visible world height.
func (v Viewport) HalfH() float64 {
	return v.WorldH / 2
}

// UnitsPerWorld returns screen units per world unit on each axis.
func (v Viewport) UnitsPerWorld() (sx, sy float64) {
	if v.WorldW == 0 || v.WorldH == 0 {
		return 0, 0
	}
	return v.ScreenW / v.WorldW, v.ScreenH / v.WorldH
}

// Project converts a world point to screen coordinates.
func (v Viewport) Project(p Vec) (x, y float64) {
	sx, sy := v.UnitsPerWorld()
	x = (p.X - v.CenterX + v.HalfW()) * sx
	y = (v.CenterY + v.HalfH() - p.Y) * sy
	return x, y
}

// Unproject converts screen coordinates to a world point.
func (v Viewport) Unproject(x, y float64) Vec {
	if v.ScreenW == 0 || v.ScreenH == 0 {
		return Vec{v.CenterX, v.CenterY}
	}
	return Vec{
		X: v.CenterX - v.HalfW() + x/v.ScreenW*v.WorldW,
		Y: v.CenterY + v.HalfH() - y/v.ScreenH*v.WorldH,
	}
}
