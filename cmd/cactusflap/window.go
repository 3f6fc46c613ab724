package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cactusflap/internal/core"
	"github.com/vovakirdan/cactusflap/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a native window and play there.

Controls:
  Enter/Click  - Start
  Space/Up/W   - Flap
  F12          - Save a PNG screenshot
  Esc/Q        - Quit

Examples:
  cactusflap window
  cactusflap window --scale 1.5 --difficulty normal`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", gui.DefaultScale, "Window pixels per canvas unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := newGame()
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	opts := gui.Options{
		Scale:         flagScale,
		Player:        playerName(),
		ScreenshotDir: screenshotDir(),
		Logger:        logger,
	}
	if err := gui.Run(game, store, rt, opts); err != nil {
		logger.Error("window closed with error", "error", err)
		// Deferred closes do not run after os.Exit.
		if store != nil {
			store.Close()
		}
		closeLog()
		os.Exit(1)
	}
}
