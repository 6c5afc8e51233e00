package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/launchland/internal/core"
)

// sampleInput fills the frame from the mouse and keyboard.
// It returns true when the player asked to quit.
func sampleInput(f *core.InputFrame) bool {
	x, y := ebiten.CursorPosition()
	f.SetPointer(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	// Space is a real hold here, unlike the terminal
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		f.SetKey(core.KeyBoost)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.SetKey(core.KeyPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.SetKey(core.KeyRestart)
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
