package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster draws into an in-memory RGBA image with anti-aliased shapes.
// It backs PNG snapshots and screenshots.
type Raster struct {
	img   *image.RGBA
	w, h  float64
	scale float64
	z     *vector.Rasterizer
	face  font.Face
}

// NewRaster creates a surface of w×h logical units rendered at scale pixels per unit.
func NewRaster(w, h, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	pw := max(1, int(math.Ceil(w*scale)))
	ph := max(1, int(math.Ceil(h*scale)))
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		w:     w,
		h:     h,
		scale: scale,
		z:     vector.NewRasterizer(pw, ph),
		face:  basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the current image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

// At returns the color at a logical position.
func (r *Raster) At(x, y float64) color.NRGBA {
	px := int(x * r.scale)
	py := int(y * r.scale)
	return color.NRGBAModel.Convert(r.img.At(px, py)).(color.NRGBA)
}

func (r *Raster) Size() (float64, float64) {
	return r.w, r.h
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r.FillPolygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, c)
}

func (r *Raster) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	if rad <= 0 {
		return
	}
	r.FillPolygon(circlePoints(cx, cy, rad, r.scale), c)
}

func (r *Raster) FillPolygon(pts []Point, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	b := r.img.Bounds()
	dev := make([]Point, len(pts))
	for i, p := range pts {
		dev[i] = Point{X: p.X * r.scale, Y: p.Y * r.scale}
	}
	dev = clipPolygon(dev, 0, 0, float64(b.Dx()), float64(b.Dy()))
	if len(dev) < 3 {
		return
	}

	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(dev[0].X), float32(dev[0].Y))
	for _, p := range dev[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

func (r *Raster) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(x * r.scale))
	x1 := int(math.Round((x + w) * r.scale))
	y0 := int(math.Round(y * r.scale))
	y1 := int(math.Round((y + h) * r.scale))
	span := float64(max(1, y1-y0-1))
	for py := y0; py < y1; py++ {
		c := Mix(top, bottom, float64(py-y0)/span)
		row := image.Rect(x0, py, x1, py+1).Intersect(r.img.Bounds())
		draw.Draw(r.img, row, image.NewUniform(c), image.Point{}, draw.Over)
	}
}

func (r *Raster) FillText(text string, x, y, size float64, align Align, c color.NRGBA) {
	if text == "" || size <= 0 {
		return
	}
	m := r.face.Metrics()
	ascent := m.Ascent.Ceil()
	glyphH := ascent + m.Descent.Ceil()
	glyphW := font.MeasureString(r.face, text).Ceil()

	// Render at the face's native size, then scale to the requested height.
	src := image.NewRGBA(image.Rect(0, 0, glyphW, glyphH))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	k := size * r.scale / float64(glyphH)
	dw := float64(glyphW) * k
	left := x*r.scale - textOffset(dw, align)
	top := y*r.scale - float64(ascent)*k
	dst := image.Rect(int(left), int(top), int(left+dw), int(top+float64(glyphH)*k))
	xdraw.ApproxBiLinear.Scale(r.img, dst, src, src.Bounds(), xdraw.Over, nil)
}

func (r *Raster) Present() {}
