package canvas

import (
	"image/color"
	"math"

	"github.com/vovakirdan/cactusflap/internal/core"
)

// halfBlock shows the upper pixel as foreground and the lower as background.
const halfBlock = '▀'

// Cells rasterizes onto a terminal screen using half-block characters, giving
// two square-ish pixels per character cell. Shapes are sampled at pixel
// centers; text lands on whole cells. Present copies the pixels into the screen.
type Cells struct {
	screen *core.Screen
	w, h   float64
	cols   int
	rows   int // pixel rows, twice the screen height
	px     []color.NRGBA
	texts  []cellText
}

type cellText struct {
	x, y int
	text string
	fg   core.Color
}

// background is what Clear leaves behind.
var background = color.NRGBA{A: 0xff}

// NewCells wraps a screen as a surface of w×h logical units.
func NewCells(screen *core.Screen, w, h float64) *Cells {
	c := &Cells{screen: screen, w: w, h: h}
	c.sync()
	c.Clear()
	return c
}

// sync follows screen resizes.
func (c *Cells) sync() {
	cols, rows := c.screen.Width(), c.screen.Height()*2
	if cols == c.cols && rows == c.rows && c.px != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.px = make([]color.NRGBA, cols*rows)
}

// Pixel returns the color of a half-block pixel. Out-of-range reads return the background.
func (c *Cells) Pixel(px, py int) color.NRGBA {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows {
		return background
	}
	return c.px[py*c.cols+px]
}

func (c *Cells) Size() (float64, float64) {
	return c.w, c.h
}

func (c *Cells) Clear() {
	c.sync()
	for i := range c.px {
		c.px[i] = background
	}
	c.texts = c.texts[:0]
}

// fill blends col into every pixel whose center satisfies inside, scanning
// only the device rows and columns covered by the logical bounding box.
func (c *Cells) fill(minX, minY, maxX, maxY float64, col color.NRGBA, inside func(x, y float64) bool) {
	if col.A == 0 || c.cols == 0 || c.rows == 0 {
		return
	}
	sx := float64(c.cols) / c.w
	sy := float64(c.rows) / c.h

	x0 := max(0, int(math.Floor(minX*sx)))
	x1 := min(c.cols-1, int(math.Ceil(maxX*sx)))
	y0 := max(0, int(math.Floor(minY*sy)))
	y1 := min(c.rows-1, int(math.Ceil(maxY*sy)))

	for py := y0; py <= y1; py++ {
		ly := (float64(py) + 0.5) / sy
		for px := x0; px <= x1; px++ {
			lx := (float64(px) + 0.5) / sx
			if inside(lx, ly) {
				i := py*c.cols + px
				c.px[i] = Over(c.px[i], col)
			}
		}
	}
}

func (c *Cells) FillRect(x, y, w, h float64, col color.NRGBA) {
	c.fill(x, y, x+w, y+h, col, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
}

func (c *Cells) FillCircle(cx, cy, r float64, col color.NRGBA) {
	r2 := r * r
	c.fill(cx-r, cy-r, cx+r, cy+r, col, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r2
	})
}

func (c *Cells) FillPolygon(pts []Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	c.fill(minX, minY, maxX, maxY, col, func(px, py float64) bool {
		return insidePolygon(pts, px, py)
	})
}

func (c *Cells) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	if h <= 0 {
		return
	}
	sx := float64(c.cols) / c.w
	sy := float64(c.rows) / c.h
	x0 := max(0, int(math.Floor(x*sx)))
	x1 := min(c.cols, int(math.Ceil((x+w)*sx)))
	y0 := max(0, int(math.Floor(y*sy)))
	y1 := min(c.rows, int(math.Ceil((y+h)*sy)))
	for py := y0; py < y1; py++ {
		t := ((float64(py)+0.5)/sy - y) / h
		col := Mix(top, bottom, t)
		for px := x0; px < x1; px++ {
			i := py*c.cols + px
			c.px[i] = Over(c.px[i], col)
		}
	}
}

// FillText places the run on the cell row containing the middle of the glyphs.
// size only affects that placement; terminal glyphs are one cell tall.
func (c *Cells) FillText(text string, x, y, size float64, align Align, col color.NRGBA) {
	if text == "" || c.cols == 0 {
		return
	}
	n := float64(len([]rune(text)))
	cellW := c.w / float64(c.cols)
	cellH := c.h / float64(c.rows/2)
	left := x - textOffset(n*cellW, align)
	mid := y - size*0.35
	c.texts = append(c.texts, cellText{
		x:    int(math.Round(left / cellW)),
		y:    int(math.Floor(mid / cellH)),
		text: text,
		fg:   core.FromNRGBA(col),
	})
}

// Present writes pixels and text runs into the screen.
func (c *Cells) Present() {
	if c.screen.Width() != c.cols || c.screen.Height()*2 != c.rows {
		// Screen was resized mid-frame; the next Clear picks the new size up.
		return
	}
	for cy := 0; cy < c.rows/2; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			c.screen.SetCell(cx, cy, core.Cell{
				Rune: halfBlock,
				Fg:   core.FromNRGBA(c.px[(2*cy)*c.cols+cx]),
				Bg:   core.FromNRGBA(c.px[(2*cy+1)*c.cols+cx]),
			})
		}
	}
	for _, t := range c.texts {
		c.screen.DrawText(t.x, t.y, t.text, t.fg)
	}
}
