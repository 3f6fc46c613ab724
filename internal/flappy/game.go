// Package flappy implements Cactus Flap, a Flappy Bird-style game.
// The bird falls under gravity and flaps through gaps between cactus pairs
// that scroll in from the right. All coordinates are logical canvas units.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/cactusflap/internal/canvas"
	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/core"
)

// Game owns one session plus the configuration it runs with.
type Game struct {
	cfg        config.FlappyConfig
	palette    config.Palette
	difficulty *config.DifficultyManager
	rng        Source
	fixedRng   bool
	session    *Session
	overlay    *Overlay
	runtime    core.RuntimeConfig
}

// Option customizes a Game.
type Option func(*Game)

// WithSource makes the game draw randomness from src instead of a seeded
// math/rand generator. Reset no longer reseeds.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.rng = src
		g.fixedRng = true
	}
}

// WithPreset applies a difficulty preset on top of the configuration.
func WithPreset(preset config.DifficultyPreset) Option {
	return func(g *Game) {
		config.ApplyFlappyPreset(&g.cfg, preset)
	}
}

// New creates a game. The configuration is validated so every random range
// and color is usable.
func New(cfg config.FlappyConfig, opts ...Option) (*Game, error) {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := g.cfg.Theme.Palette()
	if err != nil {
		return nil, err
	}
	g.palette = pal
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(0))
	}
	g.session = newSession(g.rng, &g.cfg, g.difficulty)
	g.overlay = newOverlay()
	g.runtime = core.RuntimeConfig{TickRate: g.cfg.Loop.TickRate}
	return g, nil
}

// ID returns the game identifier used for stored scores.
func (g *Game) ID() string {
	return "cactusflap"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cactus Flap"
}

// Config returns the effective configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset reseeds the game and returns to the start overlay.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	if !g.fixedRng {
		// The managers hold the Source interface, so swap the generator in place.
		if r, ok := g.rng.(*rand.Rand); ok {
			r.Seed(rt.Seed)
		}
	}
	g.session.reset(&g.cfg)
	g.overlay = newOverlay()
}

// Start begins a fresh session and hides the overlay.
func (g *Game) Start() {
	g.session.reset(&g.cfg)
	g.session.Running = true
	g.overlay.hide()
}

// Flap gives the bird an upward impulse. Ignored unless running.
func (g *Game) Flap() {
	if !g.session.Running {
		return
	}
	g.session.Bird.flap(g.cfg.Bird.JumpImpulse)
}

// Handle applies a single trigger. Start is ignored while running.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionStart:
		if !g.session.Running {
			g.Start()
		}
	case core.ActionFlap:
		g.Flap()
	}
}

// Step applies this frame's triggers and advances the simulation by one
// frame. Start is applied before Flap, so both in one frame start and flap.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.Handle(core.ActionStart)
	}
	if in.Has(core.ActionFlap) {
		g.Handle(core.ActionFlap)
	}

	dt := g.frameInterval()
	g.overlay.update(dt.Seconds())

	if !g.session.Running {
		return core.StepResult{State: g.State()}
	}

	s := g.session
	s.Ticks++
	s.Bird.fall(g.cfg.Bird.Gravity)
	s.Score += s.Pipes.Update(s.Bird.X, s.Score, s.Ticks)
	s.Clouds.Update(dt)

	if Collides(s.Bird, s.Pipes.Pipes(), g.cfg.Pipes.Width, g.cfg.GroundY()) {
		final := s.Score
		s.reset(&g.cfg)
		g.overlay.show(final)
		return core.StepResult{State: g.State(), Crashed: true, FinalScore: final}
	}

	return core.StepResult{State: g.State()}
}

// frameInterval is the simulated time one frame covers at the rate the
// platform drives the loop. A zero rate falls back to the config.
func (g *Game) frameInterval() time.Duration {
	if g.runtime.TickRate > 0 {
		return time.Second / time.Duration(g.runtime.TickRate)
	}
	return g.cfg.FrameInterval()
}

// Frame runs one full loop iteration: clear, step, render, present.
func (g *Game) Frame(dst canvas.Surface, in core.InputFrame) core.StepResult {
	dst.Clear()
	res := g.Step(in)
	g.Render(dst)
	dst.Present()
	return res
}

// State returns the current score and running flag.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.session.Score,
		Running: g.session.Running,
	}
}

// Session exposes the live entities for inspection.
func (g *Game) Session() *Session {
	return g.session
}

// Overlay exposes the start overlay.
func (g *Game) Overlay() *Overlay {
	return g.overlay
}

// Rotation is the bird's display tilt in radians.
func (g *Game) Rotation() float64 {
	return g.session.Bird.Rotation(g.cfg.Bird.RotationFactor, g.cfg.Bird.MaxRotationDeg)
}
