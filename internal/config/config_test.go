package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\nyaml:    %+v\nbuiltin: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultFlappyConfig()

	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 600 {
		t.Errorf("canvas = %vx%v, expected 400x600", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.GroundY() != 500 {
		t.Errorf("GroundY() = %v, expected 500", cfg.GroundY())
	}
	if cfg.Bird.Gravity != 0.5 || cfg.Bird.JumpImpulse != -6 {
		t.Errorf("bird physics = %v/%v, expected 0.5/-6", cfg.Bird.Gravity, cfg.Bird.JumpImpulse)
	}
	if cfg.Clouds.SpawnInterval != 3*time.Second {
		t.Errorf("cloud spawn interval = %v, expected 3s", cfg.Clouds.SpawnInterval)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("FrameInterval() = %v, expected 1/60s", cfg.FrameInterval())
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	data := []byte("pipes:\n  gap: 120\nclouds:\n  spawn_interval: 1500ms\n")

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Pipes.Gap != 120 {
		t.Errorf("pipes.gap = %v, expected 120", cfg.Pipes.Gap)
	}
	if cfg.Clouds.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("clouds.spawn_interval = %v, expected 1.5s", cfg.Clouds.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Pipes.Width != 60 {
		t.Errorf("pipes.width = %v, expected default 60", cfg.Pipes.Width)
	}
}

func TestValidateRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"inverted pipe heights", func(c *FlappyConfig) { c.Pipes.MinHeight, c.Pipes.MaxHeight = 300, 50 }},
		{"inverted cloud sizes", func(c *FlappyConfig) { c.Clouds.MinSize, c.Clouds.MaxSize = 60, 30 }},
		{"zero gap", func(c *FlappyConfig) { c.Pipes.Gap = 0 }},
		{"zero tick rate", func(c *FlappyConfig) { c.Loop.TickRate = 0 }},
		{"ground taller than canvas", func(c *FlappyConfig) { c.Ground.Height = 600 }},
		{"bad theme color", func(c *FlappyConfig) { c.Theme.Ground = "banana" }},
		{"zero spawn distance", func(c *FlappyConfig) { c.Pipes.SpawnDistance = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsDegenerateRanges(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Pipes.MinHeight, cfg.Pipes.MaxHeight = 120, 120
	cfg.Clouds.MinSpeed, cfg.Clouds.MaxSpeed = 1, 1

	if err := cfg.Validate(); err != nil {
		t.Errorf("equal min/max should be valid, got %v", err)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flappy.yaml")
	if err := os.WriteFile(path, []byte("bird:\n  gravity: 0.25\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Bird.Gravity != 0.25 {
		t.Errorf("gravity = %v, expected 0.25", cfg.Bird.Gravity)
	}

	if _, err := LoadFlappy(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFlappy() with a missing custom path should fail")
	}

	if err := os.WriteFile(path, []byte("pipes: [not, a, map]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFlappy(path); err == nil {
		t.Error("LoadFlappy() with malformed YAML should fail")
	}
}

func TestHexColors(t *testing.T) {
	tests := []struct {
		hex     Hex
		r, g, b uint8
		a       uint8
		wantErr bool
	}{
		{"#70c5ce", 0x70, 0xc5, 0xce, 0xff, false},
		{"#ffffffcc", 0xff, 0xff, 0xff, 0xcc, false},
		{"#fff", 0xff, 0xff, 0xff, 0xff, false},
		{"#ffffffzz", 0, 0, 0, 0, true},
		{"sky", 0, 0, 0, 0, true},
	}

	for _, tc := range tests {
		c, err := tc.hex.NRGBA()
		if tc.wantErr {
			if err == nil {
				t.Errorf("NRGBA(%q) should fail", tc.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("NRGBA(%q) failed: %v", tc.hex, err)
			continue
		}
		if c.R != tc.r || c.G != tc.g || c.B != tc.b || c.A != tc.a {
			t.Errorf("NRGBA(%q) = %v, expected {%d %d %d %d}", tc.hex, c, tc.r, tc.g, tc.b, tc.a)
		}
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultFlappyConfig()

	ApplyFlappyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v, expected enabled at 0.7", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyClassic)
	if cfg.Difficulty.Enabled {
		t.Error("classic preset should disable progression")
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
	if p, err := ParsePreset(""); err != nil || p != DifficultyClassic {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected classic", p, err)
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty

	// Disabled: base values pass through untouched
	d := NewDifficultyManager(cfg)
	if got := d.Speed(2, 40, 0); got != 2 {
		t.Errorf("disabled Speed() = %v, expected 2", got)
	}
	if got := d.Spacing(200, 120, 40, 0); got != 200 {
		t.Errorf("disabled Spacing() = %v, expected 200", got)
	}

	// Enabled from zero, max difficulty at score 50
	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	if got := d.Level(25, 0); got != 0.5 {
		t.Errorf("Level(25) = %v, expected 0.5", got)
	}
	if got := d.Speed(2, 50, 0); got != 4 {
		t.Errorf("Speed at max = %v, expected 4", got)
	}
	if got := d.Spacing(200, 120, 50, 0); got != 140 {
		t.Errorf("Spacing at max = %v, expected 140", got)
	}
	if got := d.Spacing(200, 180, 50, 0); got != 180 {
		t.Errorf("Spacing should respect floor, got %v", got)
	}
	if got := d.Level(500, 0); got != 1 {
		t.Errorf("Level should clamp to 1, got %v", got)
	}
}
