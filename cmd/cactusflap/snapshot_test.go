package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/flappy"
)

func TestValidateSnapshotFlags(t *testing.T) {
	tests := []struct {
		name    string
		frames  int
		scale   float64
		wantErr bool
	}{
		{"defaults", 600, 1, false},
		{"single frame", 1, 2, false},
		{"zero frames", 0, 1, true},
		{"negative frames", -5, 1, true},
		{"zero scale", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSnapshotFlags(tt.frames, tt.scale)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSnapshotFlags(%d, %v) error = %v, wantErr %v", tt.frames, tt.scale, err, tt.wantErr)
			}
		})
	}
}

func TestPlayHeadlessRunsExactFrames(t *testing.T) {
	oldFrames, oldScale, oldRealtime := flagFrames, flagSnapshotScale, flagRealtime
	t.Cleanup(func() {
		flagFrames, flagSnapshotScale, flagRealtime = oldFrames, oldScale, oldRealtime
	})
	flagFrames, flagSnapshotScale, flagRealtime = 3, 1, false

	game, err := flappy.New(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	raster, _, err := playHeadless(context.Background(), game, log.New(io.Discard))
	if err != nil {
		t.Fatalf("playHeadless() failed: %v", err)
	}
	if raster == nil {
		t.Fatal("expected a raster with the last frame")
	}

	// The autopilot starts on frame 1, which already advances the session
	if ticks := game.Session().Ticks; ticks != 3 {
		t.Errorf("session ticks = %d, expected 3", ticks)
	}
}
