package render

import "image/color"

// Palette holds the icon colors. It is passed by value so callers can't
// mutate the shared defaults.
type Palette struct {
	Background    color.RGBA
	OrangePrimary color.RGBA
	OrangeLight   color.RGBA
	BluePrimary   color.RGBA
	White         color.RGBA
}

// CortexPalette returns the brand colors.
func CortexPalette() Palette {
	return Palette{
		Background:    color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xFF}, // #1a1a1a
		OrangePrimary: color.RGBA{R: 0xe9, G: 0x74, B: 0x44, A: 0xFF}, // #e97444
		OrangeLight:   color.RGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xFF}, // #ff6b35
		BluePrimary:   color.RGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xFF}, // #4a90e2
		White:         color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

// Preview sheet colors.
var (
	SheetBackground = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF}
	SheetForeground = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
)

// BaseSize is the design grid every icon dimension is expressed in.
const BaseSize = 32
