package flappy

import (
	"math"

	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/core"
)

// Bird is the player. X never changes; Y is the center of the body.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64 // Positive = falling
	Radius   float64
}

// newBird places a resting bird at the vertical center of the canvas.
func newBird(cfg config.FlappyConfig) Bird {
	return Bird{
		X:      cfg.Bird.X,
		Y:      cfg.Canvas.Height / 2,
		Radius: cfg.Bird.Radius,
	}
}

// fall applies one frame of gravity and keeps the bird below the ceiling.
func (b *Bird) fall(gravity float64) {
	b.Velocity += gravity
	b.Y += b.Velocity

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.Velocity = 0
	}
}

// flap replaces the current velocity with the jump impulse.
func (b *Bird) flap(impulse float64) {
	b.Velocity = impulse
}

// Rotation is the display tilt in radians, derived from velocity.
func (b Bird) Rotation(factor, maxDeg float64) float64 {
	limit := maxDeg * math.Pi / 180
	return core.ClampF(b.Velocity*factor, -limit, limit)
}

// Box returns the square around the body used for collision tests.
func (b Bird) Box() core.RectF {
	return core.RectF{X: b.X - b.Radius, Y: b.Y - b.Radius, W: 2 * b.Radius, H: 2 * b.Radius}
}
