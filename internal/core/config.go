package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from the terminal or window it runs in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int  // Current score
	Running bool // Whether a session is in progress (start overlay hidden)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Crashed is true on the frame the bird hit the ground or a pipe.
	// The session has already been reset, so FinalScore keeps the score
	// that was on screen before the crash.
	Crashed    bool
	FinalScore int
}
