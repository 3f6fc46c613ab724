package loop

import "sync"

// Manual is a scheduler whose frames run only when Step is called.
// Bubble Tea ticks and Ebitengine updates call Step once per refresh.
type Manual struct {
	mu      sync.Mutex
	pending func()
}

// NewManual creates a manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) RequestFrame(fn func()) {
	m.mu.Lock()
	m.pending = fn
	m.mu.Unlock()
}

func (m *Manual) CancelFrame() {
	m.mu.Lock()
	m.pending = nil
	m.mu.Unlock()
}

// Pending reports whether a frame is waiting.
func (m *Manual) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// Step runs the pending frame, if any. Returns false when nothing was pending.
func (m *Manual) Step() bool {
	m.mu.Lock()
	fn := m.pending
	m.pending = nil
	m.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// StepN runs up to n frames and returns how many ran.
func (m *Manual) StepN(n int) int {
	ran := 0
	for ran < n && m.Step() {
		ran++
	}
	return ran
}
