// Package banner animates transient messages (stage up, cleared, game over)
// shared by the terminal and desktop frontends.
package banner

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/launchland/internal/core"
)

// Phase durations in seconds.
const (
	FadeIn  = 0.2
	Hold    = 1.2
	FadeOut = 0.6
)

// Banner is the message currently on screen.
type Banner struct {
	Text  string
	Color core.Color
	Alpha float32 // 0..1
}

// Board shows one banner at a time. A new banner replaces the current one.
type Board struct {
	current Banner
	phases  []*gween.Tween
	active  bool

	stage   int
	cleared bool
}

// NewBoard creates an empty board tracking a fresh run.
func NewBoard() *Board {
	return &Board{stage: 1}
}

// Show starts a banner from fully transparent.
func (b *Board) Show(text string, c core.Color) {
	b.current = Banner{Text: text, Color: c}
	b.phases = []*gween.Tween{
		gween.New(0, 1, FadeIn, ease.OutQuad),
		gween.New(1, 1, Hold, ease.Linear),
		gween.New(1, 0, FadeOut, ease.InQuad),
	}
	b.active = true
}

// Update advances the animation by dt seconds.
func (b *Board) Update(dt float64) {
	if !b.active {
		return
	}
	remaining := float32(dt)
	for len(b.phases) > 0 {
		alpha, done := b.phases[0].Update(remaining)
		b.current.Alpha = alpha
		if !done {
			return
		}
		b.phases = b.phases[1:]
		// Overflow is dropped
		remaining = 0
	}
	b.active = false
	b.current.Alpha = 0
}

// Current returns the visible banner, if any.
func (b *Board) Current() (Banner, bool) {
	if !b.active {
		return Banner{}, false
	}
	return b.current, true
}

// Observe compares a step's state with the previous one and shows a banner
// for stage up, clear or game over.
func (b *Board) Observe(state core.GameState) {
	switch {
	case state.GameOver:
		b.Show(fmt.Sprintf("GAME OVER  score %d  stage %d", state.Score, state.Stage), core.ColorBrightRed)
		b.stage = 1
		b.cleared = false
		return
	case state.Cleared && !b.cleared:
		b.Show("CLEARED", core.ColorBrightGreen)
	case state.Stage > b.stage:
		b.Show(fmt.Sprintf("STAGE %d", state.Stage), core.ColorBrightYellow)
	}
	b.stage = state.Stage
	b.cleared = state.Cleared
}
