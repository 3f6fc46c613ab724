package flappy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	overlaySlide    = 80  // Units the title travels while sliding in
	overlayDuration = 0.5 // Seconds
)

// Overlay is the start screen shown while no session is running.
// Its text slides down into place each time it appears.
type Overlay struct {
	visible   bool
	tween     *gween.Tween
	offset    float64
	lastScore int
	best      int
}

func newOverlay() *Overlay {
	o := &Overlay{}
	o.show(0)
	return o
}

// show makes the overlay visible and restarts the slide-in.
// lastScore is the score of the session that just ended (0 for none).
func (o *Overlay) show(lastScore int) {
	o.visible = true
	o.lastScore = lastScore
	o.best = max(o.best, lastScore)
	o.offset = -overlaySlide
	o.tween = gween.New(-overlaySlide, 0, overlayDuration, ease.OutCubic)
}

func (o *Overlay) hide() {
	o.visible = false
	o.tween = nil
	o.offset = 0
}

// update advances the slide-in by dt seconds.
func (o *Overlay) update(dt float64) {
	if o.tween == nil {
		return
	}
	v, done := o.tween.Update(float32(dt))
	o.offset = float64(v)
	if done {
		o.offset = 0
		o.tween = nil
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Offset is the current vertical displacement of the overlay text.
func (o *Overlay) Offset() float64 { return o.offset }

// LastScore is the score of the most recent finished session.
func (o *Overlay) LastScore() int { return o.lastScore }

// Best is the highest score finished since the game was created.
func (o *Overlay) Best() int { return o.best }
