package core

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB color for a screen cell.
// The zero value means "terminal default" so a fresh Screen renders uncolored.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB builds a set color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// FromNRGBA drops the alpha channel of c. Callers blend before converting.
func FromNRGBA(c color.NRGBA) Color {
	return RGB(c.R, c.G, c.B)
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
