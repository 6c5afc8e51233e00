package core

// Key identifies a keyboard modifier or command the simulation may query.
type Key int

const (
	KeyNone    Key = iota
	KeyBoost       // Space - doubles gravity while held
	KeyPause       // P, Escape - toggle pause (reported on the frame it is triggered)
	KeyRestart     // R - abandon the run and start a new one
	KeyQuit        // Q, Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyBoost:
		return "Boost"
	case KeyPause:
		return "Pause"
	case KeyRestart:
		return "Restart"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource is polled once per frame by the simulation.
// Pointer coordinates are in screen space (cells or pixels, y down).
type InputSource interface {
	PointerPosition() (x, y float64)
	IsPressed() bool
	JustPressed() bool
	JustReleased() bool
	IsKeyDown(k Key) bool
}

// InputFrame is a sampled InputSource for a single frame.
// Frontends fill it from device events and call Advance after each step.
type InputFrame struct {
	PointerX, PointerY float64
	Pressed            bool // Primary button state this frame
	WasPressed         bool // Primary button state last frame

	// Keys holds keys down during this frame.
	Keys map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Key]bool),
	}
}

// PointerPosition implements InputSource.
func (f InputFrame) PointerPosition() (float64, float64) {
	return f.PointerX, f.PointerY
}

// IsPressed implements InputSource.
func (f InputFrame) IsPressed() bool {
	return f.Pressed
}

// JustPressed implements InputSource.
func (f InputFrame) JustPressed() bool {
	return f.Pressed && !f.WasPressed
}

// JustReleased implements InputSource.
func (f InputFrame) JustReleased() bool {
	return !f.Pressed && f.WasPressed
}

// IsKeyDown implements InputSource.
func (f InputFrame) IsKeyDown(k Key) bool {
	return f.Keys[k]
}

// SetKey marks a key as down for this frame.
func (f *InputFrame) SetKey(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// SetPointer records the pointer position and button state.
func (f *InputFrame) SetPointer(x, y float64, pressed bool) {
	f.PointerX = x
	f.PointerY = y
	f.Pressed = pressed
}

// Advance rolls the button state into history and clears per-frame keys.
// The pointer position and current button state carry over.
func (f *InputFrame) Advance() {
	f.WasPressed = f.Pressed
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}
