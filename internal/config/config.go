// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Loop       LoopConfig       `yaml:"loop"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Clouds     CloudConfig      `yaml:"clouds"`
	Ground     GroundConfig     `yaml:"ground"`
	Theme      Theme            `yaml:"theme"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the logical drawing area. Surfaces scale it to the device.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoopConfig controls frame pacing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second; also the simulated clock step
}

// BirdConfig defines the player and its physics.
type BirdConfig struct {
	X              float64 `yaml:"x"`
	Radius         float64 `yaml:"radius"`
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Negative = up
	RotationFactor float64 `yaml:"rotation_factor"` // Radians per unit of velocity
	MaxRotationDeg float64 `yaml:"max_rotation_deg"`
}

// PipeConfig defines obstacle geometry and spawning.
type PipeConfig struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
	Speed         float64 `yaml:"speed"`
	SpawnDistance float64 `yaml:"spawn_distance"` // Distance the last pipe travels before the next spawns
}

// CloudConfig defines the decorative cloud layer.
type CloudConfig struct {
	MinSpeed      float64       `yaml:"min_speed"`
	MaxSpeed      float64       `yaml:"max_speed"`
	MinSize       float64       `yaml:"min_size"`
	MaxSize       float64       `yaml:"max_size"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MaxYFraction  float64       `yaml:"max_y_fraction"` // Clouds spawn in [0, height*fraction)
}

// GroundConfig defines the ground band at the bottom of the canvas.
type GroundConfig struct {
	Height float64 `yaml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to pipe speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spawn distance reduction at max difficulty
}

// GroundY returns the top edge of the ground band.
func (c FlappyConfig) GroundY() float64 {
	return c.Canvas.Height - c.Ground.Height
}

// FrameInterval returns the simulated time covered by one frame.
func (c FlappyConfig) FrameInterval() time.Duration {
	if c.Loop.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Loop.TickRate)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyClassic DifficultyPreset = "classic"
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means classic.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyClassic, nil
	case DifficultyClassic, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want classic, easy, normal or hard)", name)
	}
}
