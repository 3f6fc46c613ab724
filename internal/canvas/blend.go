package canvas

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// toColorful drops alpha; callers handle it separately.
func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, a uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Mix interpolates between two colors, t=0 giving a and t=1 giving b.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return fromColorful(toColorful(a).BlendRgb(toColorful(b), t), uint8(alpha+0.5))
}

// Over composites src onto an opaque dst.
func Over(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 0xff:
		return src
	case 0:
		return dst
	}
	out := Mix(dst, src, float64(src.A)/255)
	out.A = 0xff
	return out
}
