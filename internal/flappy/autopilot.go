package flappy

import "github.com/vovakirdan/cactusflap/internal/core"

// autopilotSlack keeps the bird this far above the lower cactus before flapping.
const autopilotSlack = 25

// Autopilot plays the game without a human: it starts a session whenever
// none is running and flaps when the bird sinks toward the bottom of the
// next gap while no longer climbing faster than half a flap. It
// is deterministic, so a seeded run always replays the same.
type Autopilot struct {
	game *Game
}

// NewAutopilot attaches a bot to g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

// Input decides this frame's triggers.
func (a *Autopilot) Input() core.InputFrame {
	in := core.NewInputFrame()
	s := a.game.session
	if !s.Running {
		in.Set(core.ActionStart)
		return in
	}

	b := s.Bird
	if b.Velocity > a.game.cfg.Bird.JumpImpulse/2 && b.Y+b.Radius > a.floor() {
		in.Set(core.ActionFlap)
	}
	return in
}

// floor is the lowest the bird's underside should sink this frame.
func (a *Autopilot) floor() float64 {
	cfg := a.game.cfg
	b := a.game.session.Bird
	floor := cfg.GroundY() - autopilotSlack

	// The first pipe the bird can still hit decides the target.
	for _, p := range a.game.session.Pipes.Pipes() {
		if p.X+cfg.Pipes.Width > b.X-b.Radius {
			floor = min(floor, p.BottomY-autopilotSlack)
			break
		}
	}
	return floor
}

// Step feeds the bot's input into the game for one frame.
func (a *Autopilot) Step() core.StepResult {
	return a.game.Step(a.Input())
}
