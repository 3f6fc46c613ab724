package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cactusflap/internal/canvas"
	"github.com/vovakirdan/cactusflap/internal/core"
	"github.com/vovakirdan/cactusflap/internal/flappy"
	"github.com/vovakirdan/cactusflap/internal/loop"
	"github.com/vovakirdan/cactusflap/internal/storage"
)

// screenshotScale renders PNG screenshots at twice the canvas size.
const screenshotScale = 2

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything, since the
// terminal is owned by the game.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithPlayer sets the name stored with scores.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// WithScreenshotDir sets where Ctrl+S writes PNG files.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// WithRenderer sets the lipgloss renderer, e.g. one per SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// runner holds the per-frame state shared by every copy of the Model.
type runner struct {
	game    *flappy.Game
	screen  *core.Screen
	surface *canvas.Cells
	sched   *loop.Manual
	loop    *loop.Loop
	input   core.InputFrame
	last    core.StepResult
}

// Model is the Bubble Tea model for playing Cactus Flap in a terminal.
type Model struct {
	run           *runner
	store         *storage.Store
	logger        *log.Logger
	renderer      *lipgloss.Renderer
	player        string
	screenshotDir string
	config        core.RuntimeConfig
	keys          *KeyMapper
	termW, termH  int
	quitting      bool
}

// NewModel creates a model around a game. The canvas is letterboxed into
// the terminal so the playfield keeps its aspect ratio.
func NewModel(game *flappy.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().Loop.TickRate
	}

	m := Model{
		store:  store,
		logger: log.New(io.Discard),
		player: storage.DefaultPlayer,
		config: cfg,
		keys:   NewKeyMapper(),
		termW:  cfg.ScreenW,
		termH:  cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}

	gc := game.Config()
	w, h := fitCanvas(cfg.ScreenW, cfg.ScreenH, gc.Canvas.Width, gc.Canvas.Height)
	screen := core.NewScreen(w, h)
	r := &runner{
		game:    game,
		screen:  screen,
		surface: canvas.NewCells(screen, gc.Canvas.Width, gc.Canvas.Height),
		sched:   loop.NewManual(),
		input:   core.NewInputFrame(),
	}
	r.loop = loop.New(r.sched, r.frame)
	m.run = r

	game.Reset(cfg)
	r.draw()
	return m
}

// frame is the loop callback: clear, step, render, present.
func (r *runner) frame() {
	r.last = r.game.Frame(r.surface, r.input)
	r.input.Clear()
}

// draw renders without advancing the game.
func (r *runner) draw() {
	r.surface.Clear()
	r.game.Render(r.surface)
	r.surface.Present()
}

// fitCanvas picks the largest screen (in cells) that shows a w×h canvas
// undistorted. Each cell holds two square-ish pixels stacked vertically.
func fitCanvas(termW, termH int, w, h float64) (int, int) {
	if termW <= 0 || termH <= 0 {
		return max(termW, 1), max(termH, 1)
	}
	cols := int(math.Round(float64(termH*2) * w / h))
	if cols <= termW {
		return max(cols, 1), termH
	}
	rows := int(math.Round(float64(termW) * h / w / 2))
	return termW, max(min(rows, termH), 1)
}

// Init starts the frame loop and the tick timer.
func (m Model) Init() tea.Cmd {
	m.run.loop.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.run.input.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.run.input) {
		m.quitting = true
		m.run.loop.Stop()
		return m, tea.Quit
	}

	if action, _ := m.keys.MapKey(msg); action == core.ActionScreenshot {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}

	return m, nil
}

// handleResize refits the canvas. The game keeps running: its
// coordinates are logical and do not depend on the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW, m.termH = msg.Width, msg.Height
	m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	gc := m.run.game.Config()
	w, h := fitCanvas(msg.Width, msg.Height, gc.Canvas.Width, gc.Canvas.Height)
	m.run.screen.Resize(w, h)
	m.run.draw()

	return m, nil
}

// handleTick runs one frame and records finished sessions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.run.sched.Step() {
		// Loop stopped; stop ticking too.
		return m, nil
	}

	if res := m.run.last; res.Crashed {
		m.logger.Info("session ended", "player", m.player, "score", res.FinalScore)
		m.saveScore(res.FinalScore)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores a finished session. Failures are logged and play goes on.
func (m Model) saveScore(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.run.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot renders the current frame to a PNG file.
func (m Model) saveScreenshot() (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "cactusflap")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	gc := m.run.game.Config()
	raster := canvas.NewRaster(gc.Canvas.Width, gc.Canvas.Height, screenshotScale)
	m.run.game.Render(raster)

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.run.game.ID(), timestamp))
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

// View renders the letterboxed canvas.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame := RenderScreenWith(m.renderer, m.run.screen)
	if m.termW <= 0 || m.termH <= 0 {
		return frame
	}
	return m.renderer.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, frame)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.run.game.State()
}

// Run starts the Bubble Tea program with the given game.
func Run(game *flappy.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to start
	)

	_, err := p.Run()
	return err
}
