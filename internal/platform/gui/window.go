// Package gui runs the game in a native Ebitengine window.
package gui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cactusflap/internal/canvas"
	"github.com/vovakirdan/cactusflap/internal/core"
	"github.com/vovakirdan/cactusflap/internal/flappy"
	"github.com/vovakirdan/cactusflap/internal/loop"
	"github.com/vovakirdan/cactusflap/internal/storage"
)

// DefaultScale is the window pixels per canvas unit.
const DefaultScale = 1.0

// Options configures a window.
type Options struct {
	Scale         float64
	Player        string
	ScreenshotDir string
	Logger        *log.Logger
}

// Window adapts a flappy.Game to ebiten.Game. Ebitengine calls Update at the
// tick rate; each Update runs one loop frame onto the offscreen surface.
type Window struct {
	game    *flappy.Game
	store   *storage.Store
	opts    Options
	logger  *log.Logger
	surface *Surface
	sched   *loop.Manual
	loop    *loop.Loop
	input   core.InputFrame
	last    core.StepResult
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow builds the window adapter and resets the game.
func NewWindow(game *flappy.Game, store *storage.Store, rt core.RuntimeConfig, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	gc := game.Config()
	w := &Window{
		game:    game,
		store:   store,
		opts:    opts,
		logger:  logger,
		surface: NewSurface(gc.Canvas.Width, gc.Canvas.Height, opts.Scale),
		sched:   loop.NewManual(),
		input:   core.NewInputFrame(),
	}
	w.loop = loop.New(w.sched, w.frame)
	game.Reset(rt)
	return w
}

// Size returns the window size in pixels.
func (w *Window) Size() (int, int) {
	sw, sh := w.surface.Size()
	return int(sw * w.opts.Scale), int(sh * w.opts.Scale)
}

func (w *Window) frame() {
	w.last = w.game.Frame(w.surface, w.input)
	w.input.Clear()
}

// Update polls input and runs one frame.
func (w *Window) Update() error {
	if !w.loop.Running() {
		w.loop.Start()
	}

	res := pollInput(inpututil.IsKeyJustPressed, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	if res.quit {
		w.loop.Stop()
		return ebiten.Termination
	}
	if res.screenshot {
		if path, err := w.saveScreenshot(); err != nil {
			w.logger.Warn("screenshot failed", "error", err)
		} else {
			w.logger.Info("screenshot saved", "path", path)
		}
	}
	for _, a := range res.actions {
		w.input.Set(a)
	}

	w.sched.Step()
	if w.last.Crashed {
		w.logger.Info("session ended", "player", w.opts.Player, "score", w.last.FinalScore)
		w.saveScore(w.last.FinalScore)
	}
	return nil
}

// Draw copies the offscreen canvas to the window.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.surface.Image(), nil)
}

// Layout keeps the canvas at its own pixel size; Ebitengine scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.Size()
}

func (w *Window) saveScore(score int) {
	if w.store == nil || score <= 0 {
		return
	}
	if _, err := w.store.SaveScore(w.game.ID(), w.opts.Player, score); err != nil {
		w.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current frame as PNG through the image raster.
func (w *Window) saveScreenshot() (string, error) {
	dir := w.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "cactusflap")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	gc := w.game.Config()
	raster := canvas.NewRaster(gc.Canvas.Width, gc.Canvas.Height, w.opts.Scale)
	w.game.Render(raster)

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", w.game.ID(), time.Now().Format("20060102_150405.000")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create screenshot: %w", err)
	}
	defer f.Close()

	if err := raster.EncodePNG(f); err != nil {
		return "", err
	}
	return path, nil
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, store *storage.Store, rt core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, store, rt, opts)

	tps := rt.TickRate
	if tps <= 0 {
		tps = game.Config().Loop.TickRate
	}
	ebiten.SetTPS(tps)

	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
