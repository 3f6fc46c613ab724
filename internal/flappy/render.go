package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/cactusflap/internal/canvas"
	"github.com/vovakirdan/cactusflap/internal/core"
)

// Decoration spacing for cactus segments
const (
	textureStep   = 15
	textureInset  = 5
	textureW      = 5
	textureH      = 10
	spikeStep     = 10
	spikeW        = 3
	spikeH        = 2
	scoreSize     = 48
	scoreBaseline = 100
)

// Render draws the current frame back to front: sky, clouds, ground, pipes,
// bird, score and the start overlay. It does not change game state.
func (g *Game) Render(dst canvas.Surface) {
	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height
	pal := g.palette

	dst.FillVerticalGradient(0, 0, w, h, pal.SkyTop, pal.SkyBottom)

	for _, c := range g.session.Clouds.Clouds() {
		g.drawCloud(dst, c)
	}

	groundY := g.cfg.GroundY()
	dst.FillRect(0, groundY, w, g.cfg.Ground.Height, pal.Ground)

	for _, p := range g.session.Pipes.Pipes() {
		g.drawPipe(dst, p)
	}

	g.drawBird(dst)

	dst.FillText(strconv.Itoa(g.session.Score), w/2, scoreBaseline, scoreSize, canvas.AlignCenter, pal.Score)

	if g.overlay.Visible() {
		g.drawOverlay(dst)
	}
}

func (g *Game) drawCloud(dst canvas.Surface, c Cloud) {
	col := g.palette.Cloud
	s := c.Size
	dst.FillCircle(c.X, c.Y, s, col)
	dst.FillCircle(c.X+s*0.5, c.Y-s*0.3, s*0.7, col)
	dst.FillCircle(c.X+s*0.5, c.Y+s*0.3, s*0.7, col)
	dst.FillCircle(c.X+s, c.Y, s*0.8, col)
}

// drawPipe draws both cactus segments. The lower one runs to the canvas
// bottom, over the ground band.
func (g *Game) drawPipe(dst canvas.Surface, p Pipe) {
	width := g.cfg.Pipes.Width
	g.drawSegment(dst, p.TopRect(width))
	g.drawSegment(dst, p.BottomRect(width, g.cfg.Canvas.Height))
}

// drawSegment draws one cactus column with its texture and spikes.
func (g *Game) drawSegment(dst canvas.Surface, r core.RectF) {
	if r.H <= 0 {
		return
	}
	x, from, to, width := r.X, r.Y, r.Bottom(), r.W
	pal := g.palette

	dst.FillRect(x, from, width, r.H, pal.Cactus)

	for i := from; i < to; i += textureStep {
		dst.FillRect(x+textureInset, i, textureW, textureH, pal.CactusLight)
	}

	for i := from; i < to; i += spikeStep {
		dst.FillRect(x-spikeW, i, spikeW, spikeH, pal.CactusDark)
		dst.FillRect(x+width, i, spikeW, spikeH, pal.CactusDark)
	}
}

// drawBird draws the body, eye and beak rotated around the bird center.
func (g *Game) drawBird(dst canvas.Surface) {
	b := g.session.Bird
	pal := g.palette
	angle := g.Rotation()

	at := func(lx, ly float64) canvas.Point {
		rx, ry := core.Rotate(lx, ly, angle)
		return canvas.Point{X: b.X + rx, Y: b.Y + ry}
	}

	dst.FillCircle(b.X, b.Y, b.Radius, pal.BirdBody)

	eye := at(8, -2)
	dst.FillCircle(eye.X, eye.Y, 4, pal.BirdEye)
	dst.FillCircle(eye.X, eye.Y, 2, pal.BirdPupil)

	dst.FillPolygon([]canvas.Point{at(12, 0), at(20, -2), at(20, 2)}, pal.BirdBeak)
}

func (g *Game) drawOverlay(dst canvas.Surface) {
	w, h := g.cfg.Canvas.Width, g.cfg.Canvas.Height
	pal := g.palette
	y := h/2 + g.overlay.Offset()

	dst.FillRect(0, 0, w, h, pal.Overlay)
	dst.FillText("CACTUS FLAP", w/2, y-60, 40, canvas.AlignCenter, pal.OverlayText)
	dst.FillText("Press Enter or click to start", w/2, y, 18, canvas.AlignCenter, pal.OverlayText)
	dst.FillText("Space to flap", w/2, y+30, 18, canvas.AlignCenter, pal.OverlayText)

	if g.overlay.LastScore() > 0 {
		line := fmt.Sprintf("Score %d  Best %d", g.overlay.LastScore(), g.overlay.Best())
		dst.FillText(line, w/2, y+80, 20, canvas.AlignCenter, pal.OverlayText)
	}
}
