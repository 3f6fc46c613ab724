package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex is a color written as "#rgb", "#rrggbb" or "#rrggbbaa".
type Hex string

// NRGBA parses the color. An 8-digit form carries alpha in the last byte.
func (h Hex) NRGBA() (color.NRGBA, error) {
	s := string(h)
	alpha := uint8(0xff)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("config: bad alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: bad color %q: %w", string(h), err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Theme holds the colors of every drawn element.
type Theme struct {
	SkyTop      Hex `yaml:"sky_top"`
	SkyBottom   Hex `yaml:"sky_bottom"`
	Cloud       Hex `yaml:"cloud"`
	Ground      Hex `yaml:"ground"`
	Cactus      Hex `yaml:"cactus"`
	CactusLight Hex `yaml:"cactus_light"`
	CactusDark  Hex `yaml:"cactus_dark"`
	BirdBody    Hex `yaml:"bird_body"`
	BirdEye     Hex `yaml:"bird_eye"`
	BirdPupil   Hex `yaml:"bird_pupil"`
	BirdBeak    Hex `yaml:"bird_beak"`
	Score       Hex `yaml:"score"`
	Overlay     Hex `yaml:"overlay"`
	OverlayText Hex `yaml:"overlay_text"`
}

// Palette is a Theme resolved to concrete colors.
type Palette struct {
	SkyTop, SkyBottom               color.NRGBA
	Cloud, Ground                   color.NRGBA
	Cactus, CactusLight, CactusDark color.NRGBA
	BirdBody, BirdEye, BirdPupil    color.NRGBA
	BirdBeak, Score                 color.NRGBA
	Overlay, OverlayText            color.NRGBA
}

// Palette resolves every color in the theme.
func (t Theme) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  Hex
		dst  *color.NRGBA
	}{
		{"sky_top", t.SkyTop, &p.SkyTop},
		{"sky_bottom", t.SkyBottom, &p.SkyBottom},
		{"cloud", t.Cloud, &p.Cloud},
		{"ground", t.Ground, &p.Ground},
		{"cactus", t.Cactus, &p.Cactus},
		{"cactus_light", t.CactusLight, &p.CactusLight},
		{"cactus_dark", t.CactusDark, &p.CactusDark},
		{"bird_body", t.BirdBody, &p.BirdBody},
		{"bird_eye", t.BirdEye, &p.BirdEye},
		{"bird_pupil", t.BirdPupil, &p.BirdPupil},
		{"bird_beak", t.BirdBeak, &p.BirdBeak},
		{"score", t.Score, &p.Score},
		{"overlay", t.Overlay, &p.Overlay},
		{"overlay_text", t.OverlayText, &p.OverlayText},
	}

	for _, f := range fields {
		c, err := f.hex.NRGBA()
		if err != nil {
			return Palette{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}
