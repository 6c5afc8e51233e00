package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGBA returns an 8-bit RGBA approximation of the color for pixel renderers.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorBlack:
		return 0x10, 0x10, 0x10, 0xff
	case ColorRed, ColorBrightRed:
		return 0xe0, 0x30, 0x30, 0xff
	case ColorGreen, ColorBrightGreen:
		return 0x30, 0xc0, 0x40, 0xff
	case ColorYellow, ColorBrightYellow:
		return 0xf0, 0xd0, 0x20, 0xff
	case ColorBlue:
		return 0x30, 0x60, 0xe0, 0xff
	case ColorMagenta:
		return 0xc0, 0x40, 0xc0, 0xff
	case ColorCyan, ColorBrightCyan:
		return 0x20, 0xd0, 0xd0, 0xff
	case ColorOrange:
		return 0xff, 0x88, 0x00, 0xff
	case ColorGray:
		return 0x80, 0x80, 0x80, 0xff
	default:
		return 0xf0, 0xf0, 0xf0, 0xff
	}
}
