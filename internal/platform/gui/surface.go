package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/cactusflap/internal/canvas"
)

// Glyph cell of the ebitenutil debug font.
const (
	debugGlyphW    = 6
	debugGlyphH    = 16
	debugAscent    = 12
	maxCachedTexts = 64
)

// whiteSubImage is the 1x1 source texture for DrawTriangles. It is created
// with the first surface.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Surface draws onto an offscreen Ebitengine image. Logical units are
// multiplied by scale to get image pixels.
type Surface struct {
	img   *ebiten.Image
	w, h  float64
	scale float64
	white *ebiten.Image
	texts map[string]*ebiten.Image
	verts []ebiten.Vertex
	inds  []uint16
}

var _ canvas.Surface = (*Surface)(nil)

// NewSurface allocates the offscreen image for a w×h canvas.
func NewSurface(w, h, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{
		img:   ebiten.NewImage(int(w*scale), int(h*scale)),
		w:     w,
		h:     h,
		scale: scale,
		white: whiteTexture(),
		texts: make(map[string]*ebiten.Image),
	}
}

// Image returns the offscreen image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	k := s.scale
	vector.DrawFilledRect(s.img, float32(x*k), float32(y*k), float32(w*k), float32(h*k), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	k := s.scale
	vector.DrawFilledCircle(s.img, float32(cx*k), float32(cy*k), float32(r*k), c, true)
}

// FillPolygon triangulates as a fan, which is exact for convex polygons.
// The game only draws triangles.
func (s *Surface) FillPolygon(pts []canvas.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range pts {
		s.verts = append(s.verts, s.vertex(p.X, p.Y, c))
	}
	for i := 1; i < len(pts)-1; i++ {
		s.inds = append(s.inds, 0, uint16(i), uint16(i+1))
	}
	s.drawTriangles()
}

// FillVerticalGradient draws one quad whose vertex colors the GPU
// interpolates.
func (s *Surface) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.verts = append(s.verts[:0],
		s.vertex(x, y, top),
		s.vertex(x+w, y, top),
		s.vertex(x+w, y+h, bottom),
		s.vertex(x, y+h, bottom),
	)
	s.inds = append(s.inds[:0], 0, 1, 2, 0, 2, 3)
	s.drawTriangles()
}

// FillText scales the debug font so glyphs are size units tall.
func (s *Surface) FillText(text string, x, y, size float64, align canvas.Align, c color.NRGBA) {
	if text == "" || size <= 0 {
		return
	}
	src := s.textImage(text)
	b := src.Bounds()

	k := size * s.scale / debugGlyphH
	dw := float64(b.Dx()) * k
	left := x*s.scale - alignOffset(dw, align)
	top := y*s.scale - debugAscent*k

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(src, op)
}

func (s *Surface) Present() {}

// textImage returns white text rendered at the native debug font size.
func (s *Surface) textImage(text string) *ebiten.Image {
	if img, ok := s.texts[text]; ok {
		return img
	}
	if len(s.texts) >= maxCachedTexts {
		for key, img := range s.texts {
			img.Deallocate()
			delete(s.texts, key)
		}
	}
	img := ebiten.NewImage(debugGlyphW*len([]rune(text)), debugGlyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.texts[text] = img
	return img
}

func (s *Surface) vertex(x, y float64, c color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x * s.scale),
		DstY:   float32(y * s.scale),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

func (s *Surface) drawTriangles() {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.img.DrawTriangles(s.verts, s.inds, s.white, op)
}

// alignOffset returns how far left of x a run of the given width starts.
func alignOffset(width float64, align canvas.Align) float64 {
	switch align {
	case canvas.AlignCenter:
		return width / 2
	case canvas.AlignRight:
		return width
	default:
		return 0
	}
}
