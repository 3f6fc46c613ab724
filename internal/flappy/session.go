package flappy

import "github.com/vovakirdan/cactusflap/internal/config"

// Session is everything that changes during one play-through.
// When Running is false the pipes and clouds are empty and Score is 0.
type Session struct {
	Bird    Bird
	Pipes   *PipeManager
	Clouds  *CloudField
	Score   int
	Running bool
	Ticks   int // Running frames since Start
}

func newSession(rng Source, cfg *config.FlappyConfig, diff *config.DifficultyManager) *Session {
	s := &Session{
		Pipes:  NewPipeManager(rng, cfg, diff),
		Clouds: NewCloudField(rng, cfg),
	}
	s.reset(cfg)
	return s
}

// reset returns the session to its pre-start state.
func (s *Session) reset(cfg *config.FlappyConfig) {
	s.Bird = newBird(*cfg)
	s.Pipes.Reset()
	s.Clouds.Reset()
	s.Score = 0
	s.Running = false
	s.Ticks = 0
}
