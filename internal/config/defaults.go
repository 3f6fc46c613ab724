package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml and is used when the embedded file fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Bird: BirdConfig{
			X:              200,
			Radius:         17,
			Gravity:        0.5,
			JumpImpulse:    -6,
			RotationFactor: 0.1,
			MaxRotationDeg: 45,
		},
		Pipes: PipeConfig{
			Width:         60,
			Gap:           150,
			MinHeight:     50,
			MaxHeight:     300,
			Speed:         2,
			SpawnDistance: 200,
		},
		Clouds: CloudConfig{
			MinSpeed:      0.5,
			MaxSpeed:      1.5,
			MinSize:       30,
			MaxSize:       60,
			SpawnInterval: 3 * time.Second,
			MaxYFraction:  0.5,
		},
		Ground: GroundConfig{
			Height: 100,
		},
		Theme: Theme{
			SkyTop:      "#70c5ce",
			SkyBottom:   "#87ceeb",
			Cloud:       "#ffffffcc",
			Ground:      "#dec165",
			Cactus:      "#2d5a27",
			CactusLight: "#3a6b33",
			CactusDark:  "#1e3d1a",
			BirdBody:    "#f4d03f",
			BirdEye:     "#ffffff",
			BirdPupil:   "#000000",
			BirdBeak:    "#e67e22",
			Score:       "#ffffff",
			Overlay:     "#00000099",
			OverlayText: "#ffffff",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 60,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
