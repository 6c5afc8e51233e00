package desktop

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/game"
	"github.com/vovakirdan/launchland/internal/platform/banner"
)

var (
	background  = color.RGBA{0x1c, 0x22, 0x30, 0xff}
	playerColor = color.RGBA{0xff, 0x88, 0x00, 0xff}
	hudColor    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	dragCircle  = color.RGBA{0xf0, 0xd0, 0x20, 0xff}
	dragLine    = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	outline     = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
)

type renderer struct {
	white  *ebiten.Image
	hud    text.Face
	banner text.Face
}

func newRenderer() (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &renderer{
		white:  white,
		hud:    &text.GoTextFace{Source: src, Size: 18},
		banner: &text.GoTextFace{Source: src, Size: 36},
	}, nil
}

func (r *renderer) draw(dst *ebiten.Image, snap game.Snapshot, b *banner.Banner) {
	dst.Fill(background)
	view := snap.View

	for _, seg := range snap.Segments {
		quad := screenQuad(view, seg.Center, seg.Width/2, seg.Height/2, seg.Angle)
		r.fillQuad(dst, quad, toColor(seg.Color, 1))
		if seg.Touched {
			r.strokeQuad(dst, quad, outline)
		}
	}

	p := snap.Player
	r.fillQuad(dst, screenQuad(view, p.Position, p.HalfSize, p.HalfSize, p.Angle), playerColor)

	if d := snap.Drag; d != nil {
		sx, _ := view.UnitsPerWorld()
		ox, oy := view.Project(d.Origin)
		tx, ty := view.Project(d.Tip)
		vector.StrokeCircle(dst, float32(ox), float32(oy), float32(d.Radius*sx), 2, dragCircle, true)
		vector.StrokeLine(dst, float32(ox), float32(oy), float32(tx), float32(ty), 3, dragLine, true)
	}

	r.drawText(dst, fmt.Sprintf("Score: %d", snap.Score), r.hud, 12, 8, false, hudColor)
	r.drawText(dst, fmt.Sprintf("Stage: %d", snap.Stage), r.hud, float64(dst.Bounds().Dx())-12, 8, true, hudColor)
	r.drawText(dst, fmt.Sprintf("Jumps: %d/%d", snap.Player.MaxJumps-snap.Player.JumpCount, snap.Player.MaxJumps), r.hud, 12, 32, false, hudColor)

	w, h := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())
	if snap.Paused {
		r.drawCentered(dst, "PAUSED", r.banner, w/2, h/2, toColor(core.ColorBrightYellow, 1))
	}
	if b != nil && b.Alpha > 0 {
		r.drawCentered(dst, b.Text, r.banner, w/2, h/3, toColor(b.Color, b.Alpha))
	}
}

func (r *renderer) fillQuad(dst *ebiten.Image, quad [4]core.Vec, c color.RGBA) {
	cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	var vs [4]ebiten.Vertex
	for i, q := range quad {
		vs[i] = ebiten.Vertex{
			DstX: float32(q.X), DstY: float32(q.Y),
			SrcX: 0, SrcY: 0,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	dst.DrawTriangles(vs[:], []uint16{0, 1, 2, 0, 2, 3}, r.white, nil)
}

func (r *renderer) strokeQuad(dst *ebiten.Image, quad [4]core.Vec, c color.Color) {
	for i := range quad {
		a, b := quad[i], quad[(i+1)%4]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1.5, c, true)
	}
}

func (r *renderer) drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, alignRight bool, c color.Color) {
	op := &text.DrawOptions{}
	if alignRight {
		w, _ := text.Measure(s, face, 0)
		x -= w
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func (r *renderer) drawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, c color.Color) {
	w, h := text.Measure(s, face, 0)
	r.drawText(dst, s, face, cx-w/2, cy-h/2, false, c)
}

// screenQuad projects a rotated box to screen space.
func screenQuad(view core.Viewport, center core.Vec, halfW, halfH, angle float64) [4]core.Vec {
	var out [4]core.Vec
	for i, w := range game.Corners(center, halfW, halfH, angle) {
		x, y := view.Project(w)
		out[i] = core.V(x, y)
	}
	return out
}

// toColor converts a palette color with an alpha multiplier.
func toColor(c core.Color, alpha float32) color.RGBA {
	r, g, b, a := c.RGBA()
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	// Premultiplied, as color.RGBA expects
	return color.RGBA{scale(r), scale(g), scale(b), scale(a)}
}
