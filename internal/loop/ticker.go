package loop

import (
	"context"
	"time"
)

// Ticker paces frames from a time.Ticker. Frames execute on the goroutine
// that calls Run, so game code never needs locks.
type Ticker struct {
	manual   *Manual
	interval time.Duration
}

// NewTicker creates a scheduler running at fps frames per second.
func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{
		manual:   NewManual(),
		interval: time.Second / time.Duration(fps),
	}
}

// Interval returns the time between frames.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

func (t *Ticker) RequestFrame(fn func()) {
	t.manual.RequestFrame(fn)
}

func (t *Ticker) CancelFrame() {
	t.manual.CancelFrame()
}

// Run executes frames on every tick until ctx is done or nothing is pending
// any more (the loop was stopped). It returns ctx.Err() on cancellation.
func (t *Ticker) Run(ctx context.Context) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			if !t.manual.Step() {
				return nil
			}
		}
	}
}
