package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/game"
	"github.com/vovakirdan/launchland/internal/platform/banner"
)

// Scene runes.
const (
	runeSegment  = '█'
	runeTouched  = '▓'
	runePlayer   = '■'
	runeCircle   = '·'
	runeDragLine = '*'
)

// bannerMinAlpha hides a banner while it is mostly faded.
const bannerMinAlpha = 0.25

// DrawScene draws a snapshot onto dst. The screen is cleared first.
func DrawScene(dst *core.Screen, snap game.Snapshot, b *banner.Banner) {
	dst.Clear()
	view := snap.View

	for _, seg := range snap.Segments {
		r := runeSegment
		if seg.Touched {
			r = runeTouched
		}
		fillBox(dst, view, seg.Center, seg.Width/2, seg.Height/2, seg.Angle, seg.Contains, r, seg.Color)
	}

	p := snap.Player
	fillBox(dst, view, p.Position, p.HalfSize, p.HalfSize, p.Angle, p.Contains, runePlayer, core.ColorOrange)

	if d := snap.Drag; d != nil {
		drawDrag(dst, view, *d)
	}

	drawHUD(dst, snap)

	if b != nil && b.Alpha >= bannerMinAlpha {
		c := b.Color
		if b.Alpha < 0.6 {
			c = core.ColorGray
		}
		dst.DrawTextCentered(dst.Height()/3, b.Text, c)
	}
}

// fillBox fills every cell whose center lies inside a rotated box, then
// traces the top edge so boxes thinner than a cell stay visible.
func fillBox(dst *core.Screen, view core.Viewport, center core.Vec, halfW, halfH, angle float64,
	contains func(core.Vec) bool, r rune, c core.Color) {
	corners := game.Corners(center, halfW, halfH, angle)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, w := range corners {
		x, y := view.Project(w)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	x0 := core.Max(int(math.Floor(minX)), 0)
	x1 := core.Min(int(math.Ceil(maxX)), dst.Width()-1)
	y0 := core.Max(int(math.Floor(minY)), 0)
	y1 := core.Min(int(math.Ceil(maxY)), dst.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if contains(view.Unproject(float64(x)+0.5, float64(y)+0.5)) {
				dst.SetCell(x, y, r, c)
			}
		}
	}

	ax, ay := view.Project(corners[3])
	bx, by := view.Project(corners[2])
	dst.DrawLine(int(math.Floor(ax)), int(math.Floor(ay)), int(math.Floor(bx)), int(math.Floor(by)), r, c)
}

func drawDrag(dst *core.Screen, view core.Viewport, d game.DragIndicator) {
	sx, sy := view.UnitsPerWorld()
	ox, oy := view.Project(d.Origin)
	dst.DrawEllipse(ox, oy, d.Radius*sx, d.Radius*sy, runeCircle, core.ColorYellow)

	tx, ty := view.Project(d.Tip)
	dst.DrawLine(int(math.Floor(ox)), int(math.Floor(oy)), int(math.Floor(tx)), int(math.Floor(ty)), runeDragLine, core.ColorRed)
}

func drawHUD(dst *core.Screen, snap game.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextRight(dst.Width()-1, 0, fmt.Sprintf("Stage: %d", snap.Stage), core.ColorBrightWhite)

	left := snap.Player.MaxJumps - snap.Player.JumpCount
	jumps := "Jumps: " + strings.Repeat("●", core.Max(left, 0)) + strings.Repeat("○", core.Max(snap.Player.JumpCount, 0))
	dst.DrawText(1, 1, jumps, core.ColorCyan)
	if snap.Boosting {
		dst.DrawTextRight(dst.Width()-1, 1, "BOOST", core.ColorMagenta)
	}

	switch {
	case snap.Paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "p to resume", core.ColorGray)
	case snap.Cleared:
		dst.DrawTextCentered(1, "CLEARED", core.ColorBrightGreen)
	}
}
