// Package loop drives a frame callback at display rate through a scheduler,
// the way a browser drives requestAnimationFrame callbacks.
package loop

import "sync"

// Scheduler runs a callback once at the next display refresh.
// Only one request is pending at a time; a new request replaces the old.
type Scheduler interface {
	RequestFrame(fn func())
	CancelFrame()
}

// Loop calls a frame function once per refresh until stopped.
// Each tick runs the frame and then requests the next one.
type Loop struct {
	sched   Scheduler
	frame   func()
	mu      sync.Mutex
	running bool
	frames  int
}

// New creates a stopped loop.
func New(sched Scheduler, frame func()) *Loop {
	return &Loop{sched: sched, frame: frame}
}

// Start begins requesting frames. Starting a running loop does nothing.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}
	l.running = true
	l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. A frame already executing finishes.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame()
}

// Running reports whether frames are being requested.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Frames returns how many frames have run.
func (l *Loop) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *Loop) tick() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.frames++
	l.mu.Unlock()

	l.frame()

	// The frame may have stopped the loop
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		l.sched.RequestFrame(l.tick)
	}
}
