package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactusflap/internal/canvas"
	"github.com/vovakirdan/cactusflap/internal/core"
	"github.com/vovakirdan/cactusflap/internal/flappy"
	"github.com/vovakirdan/cactusflap/internal/loop"
)

var (
	flagFrames        int
	flagOut           string
	flagSnapshotScale float64
	flagRealtime      bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run the autopilot headless and save a PNG",
	Long: `Let the built-in autopilot play for a number of frames without a
display, then write the last frame as a PNG image.

The run is deterministic for a given --seed. With --realtime frames are
paced at --fps instead of running as fast as possible.

Examples:
  cactusflap snapshot --seed 42 --frames 600 --out flap.png
  cactusflap snapshot --realtime --frames 300`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	addGameFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	snapshotCmd.Flags().StringVarP(&flagOut, "out", "o", "cactusflap.png", "Output PNG path")
	snapshotCmd.Flags().Float64Var(&flagSnapshotScale, "scale", 1, "Image pixels per canvas unit")
	snapshotCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at --fps")
}

func runSnapshot(_ *cobra.Command, _ []string) {
	if err := validateSnapshotFlags(flagFrames, flagSnapshotScale); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := newGame()
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raster, best, err := playHeadless(ctx, game, logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	if err := writePNG(flagOut, raster); err != nil {
		closeLog()
		fail("%v", err)
	}
	logger.Info("snapshot saved", "path", flagOut, "score", game.State().Score, "best", best)
}

// validateSnapshotFlags rejects runs that would not simulate any frame.
func validateSnapshotFlags(frames int, scale float64) error {
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", frames)
	}
	if scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", scale)
	}
	return nil
}

// playHeadless runs the autopilot through the frame loop and returns the
// raster holding the last frame and the best score reached.
func playHeadless(ctx context.Context, game *flappy.Game, logger *log.Logger) (*canvas.Raster, int, error) {
	rt := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if rt.TickRate <= 0 {
		rt.TickRate = game.Config().Loop.TickRate
	}
	game.Reset(rt)

	gc := game.Config()
	raster := canvas.NewRaster(gc.Canvas.Width, gc.Canvas.Height, flagSnapshotScale)
	pilot := flappy.NewAutopilot(game)

	var (
		l      *loop.Loop
		frames int
		best   int
	)
	frame := func() {
		res := game.Frame(raster, pilot.Input())
		if res.Crashed {
			logger.Debug("autopilot crashed", "frame", frames, "score", res.FinalScore)
		}
		best = max(best, res.State.Score, res.FinalScore)
		frames++
		if frames >= flagFrames {
			l.Stop()
		}
	}

	if flagRealtime {
		ticker := loop.NewTicker(rt.TickRate)
		l = loop.New(ticker, frame)
		l.Start()
		if err := ticker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return nil, 0, err
		}
	} else {
		manual := loop.NewManual()
		l = loop.New(manual, frame)
		l.Start()
		for manual.Step() {
			if ctx.Err() != nil {
				l.Stop()
				break
			}
		}
	}

	logger.Debug("headless run finished", "frames", l.Frames())
	return raster, best, nil
}

func writePNG(path string, raster *canvas.Raster) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := raster.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
