package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that every numeric range is usable, so random draws and
// spawn arithmetic are always defined. All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	finite := func(name string, v float64) {
		check(!math.IsNaN(v) && !math.IsInf(v, 0), "%s must be a finite number, got %v", name, v)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"canvas.width", c.Canvas.Width}, {"canvas.height", c.Canvas.Height},
		{"bird.x", c.Bird.X}, {"bird.radius", c.Bird.Radius}, {"bird.gravity", c.Bird.Gravity},
		{"bird.jump_impulse", c.Bird.JumpImpulse}, {"bird.rotation_factor", c.Bird.RotationFactor},
		{"bird.max_rotation_deg", c.Bird.MaxRotationDeg},
		{"pipes.width", c.Pipes.Width}, {"pipes.gap", c.Pipes.Gap},
		{"pipes.min_height", c.Pipes.MinHeight}, {"pipes.max_height", c.Pipes.MaxHeight},
		{"pipes.speed", c.Pipes.Speed}, {"pipes.spawn_distance", c.Pipes.SpawnDistance},
		{"clouds.min_speed", c.Clouds.MinSpeed}, {"clouds.max_speed", c.Clouds.MaxSpeed},
		{"clouds.min_size", c.Clouds.MinSize}, {"clouds.max_size", c.Clouds.MaxSize},
		{"clouds.max_y_fraction", c.Clouds.MaxYFraction}, {"ground.height", c.Ground.Height},
	} {
		finite(f.name, f.v)
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas must have a positive size, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	check(c.Loop.TickRate > 0, "loop.tick_rate must be positive, got %d", c.Loop.TickRate)

	check(c.Bird.Radius > 0, "bird.radius must be positive, got %v", c.Bird.Radius)
	check(c.Bird.X >= 0 && c.Bird.X <= c.Canvas.Width, "bird.x must be on the canvas, got %v", c.Bird.X)
	check(c.Bird.MaxRotationDeg >= 0, "bird.max_rotation_deg must not be negative, got %v", c.Bird.MaxRotationDeg)

	check(c.Pipes.Width > 0, "pipes.width must be positive, got %v", c.Pipes.Width)
	check(c.Pipes.Gap > 0, "pipes.gap must be positive, got %v", c.Pipes.Gap)
	check(c.Pipes.MinHeight >= 0, "pipes.min_height must not be negative, got %v", c.Pipes.MinHeight)
	check(c.Pipes.MinHeight <= c.Pipes.MaxHeight, "pipes.min_height %v exceeds max_height %v", c.Pipes.MinHeight, c.Pipes.MaxHeight)
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %v", c.Pipes.Speed)
	check(c.Pipes.SpawnDistance > 0, "pipes.spawn_distance must be positive, got %v", c.Pipes.SpawnDistance)

	check(c.Clouds.MinSpeed > 0, "clouds.min_speed must be positive, got %v", c.Clouds.MinSpeed)
	check(c.Clouds.MinSpeed <= c.Clouds.MaxSpeed, "clouds.min_speed %v exceeds max_speed %v", c.Clouds.MinSpeed, c.Clouds.MaxSpeed)
	check(c.Clouds.MinSize > 0, "clouds.min_size must be positive, got %v", c.Clouds.MinSize)
	check(c.Clouds.MinSize <= c.Clouds.MaxSize, "clouds.min_size %v exceeds max_size %v", c.Clouds.MinSize, c.Clouds.MaxSize)
	check(c.Clouds.SpawnInterval >= 0, "clouds.spawn_interval must not be negative, got %v", c.Clouds.SpawnInterval)
	check(c.Clouds.MaxYFraction >= 0 && c.Clouds.MaxYFraction <= 1, "clouds.max_y_fraction must be within [0, 1], got %v", c.Clouds.MaxYFraction)

	check(c.Ground.Height >= 0 && c.Ground.Height < c.Canvas.Height, "ground.height must be within [0, canvas.height), got %v", c.Ground.Height)

	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}
