package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cactusflap/internal/core"
	"github.com/vovakirdan/cactusflap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Enter/Click  - Start
  Space/Up/W   - Flap
  Ctrl+S       - Save a PNG screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  classic - Fixed speed and spacing (default)
  easy    - Start at lowest difficulty, progresses to max
  normal  - Start at 30% difficulty, progresses to max
  hard    - Start at 70% difficulty, progresses to max

Logs are discarded unless --log-file is set, since the game owns the terminal.

Examples:
  cactusflap play
  cactusflap play --difficulty hard
  cactusflap play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game, err := newGame()
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore(logger)
	player := playerName()
	logger.Info("starting game", "player", player, "seed", flagSeed, "difficulty", flagDifficulty)

	runErr := tui.Run(game, store, cfg,
		tui.WithLogger(logger),
		tui.WithPlayer(player),
		tui.WithScreenshotDir(screenshotDir()),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
