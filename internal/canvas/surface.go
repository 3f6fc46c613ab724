// Package canvas defines the 2D drawing target the game renders into and the
// surfaces that implement it. All coordinates are logical canvas units with
// the origin at the top-left and y growing downwards; each surface maps them
// onto its own device (image pixels, terminal half-blocks, window pixels).
package canvas

import "image/color"

// Point is a position in logical canvas units.
type Point struct {
	X, Y float64
}

// Align selects which point of a text run sits on the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a fixed-size raster drawing target.
// Colors are non-premultiplied; alpha blends over what is already drawn.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)

	// FillPolygon fills a simple polygon given by its vertices in order.
	FillPolygon(pts []Point, c color.NRGBA)

	// FillVerticalGradient fills a rectangle blending from top to bottom.
	FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA)

	// FillText draws text whose baseline sits at y. size is the glyph height.
	FillText(text string, x, y, size float64, align Align, c color.NRGBA)

	// Present finishes the frame. Surfaces that draw straight into their
	// device treat it as a no-op.
	Present()
}

// textOffset returns how far left of x a run of the given width starts.
func textOffset(width float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width
	default:
		return 0
	}
}
