package flappy

import (
	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/core"
)

// Pipe is a cactus pair with a gap between TopHeight and BottomY.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Bottom of the upper segment
	BottomY   float64 // Top of the lower segment (TopHeight + gap)
	Passed    bool    // Whether the bird has scored this pipe
}

// TopRect returns the upper segment.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.RectF{X: p.X, Y: 0, W: width, H: p.TopHeight}
}

// BottomRect returns the lower segment down to bottom.
func (p Pipe) BottomRect(width, bottom float64) core.RectF {
	return core.RectF{X: p.X, Y: p.BottomY, W: width, H: bottom - p.BottomY}
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes      []Pipe
	rng        Source
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(rng Source, cfg *config.FlappyConfig, diff *config.DifficultyManager) *PipeManager {
	return &PipeManager{
		pipes:      make([]Pipe, 0, 8),
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
}

// Reset removes every pipe.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
}

// Update spawns, moves, scores and culls pipes for one frame.
// Returns the number of pipes the bird passed this frame.
func (pm *PipeManager) Update(birdX float64, score, ticks int) int {
	width := pm.cfg.Pipes.Width
	canvasW := pm.cfg.Canvas.Width
	spacing := pm.difficulty.Spacing(pm.cfg.Pipes.SpawnDistance, width, score, ticks)

	// Spawn at the right edge when the row is empty or the last pipe has moved far enough
	if len(pm.pipes) == 0 || pm.pipes[len(pm.pipes)-1].X < canvasW-spacing {
		pm.spawn()
	}

	speed := pm.difficulty.Speed(pm.cfg.Pipes.Speed, score, ticks)
	passed := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X -= speed
		if !p.Passed && p.X+width < birdX {
			p.Passed = true
			passed++
		}
	}

	// Remove pipes that have fully left the canvas
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+width > 0 {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept

	return passed
}

// spawn appends a pipe at the right edge with a random gap position.
func (pm *PipeManager) spawn() {
	top := uniform(pm.rng, pm.cfg.Pipes.MinHeight, pm.cfg.Pipes.MaxHeight)
	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.cfg.Canvas.Width,
		TopHeight: top,
		BottomY:   top + pm.cfg.Pipes.Gap,
	})
}

// Pipes returns the current pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Next returns the first pipe the bird has not passed yet.
func (pm *PipeManager) Next() (Pipe, bool) {
	for _, p := range pm.pipes {
		if !p.Passed {
			return p, true
		}
	}
	return Pipe{}, false
}
