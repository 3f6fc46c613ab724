package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/cactusflap/internal/config"
	"github.com/vovakirdan/cactusflap/internal/core"
	"github.com/vovakirdan/cactusflap/internal/flappy"
	"github.com/vovakirdan/cactusflap/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store, opts ...Option) (Model, *flappy.Game) {
	t.Helper()
	game, err := flappy.New(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	opts = append([]Option{WithRenderer(r)}, opts...)
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts...)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Now()))
	return m
}

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		termW, termH int
		w, h         int
	}{
		{80, 24, 32, 24},
		{20, 40, 20, 15},
		{200, 60, 80, 60},
		{0, 0, 1, 1},
	}

	for _, tc := range tests {
		w, h := fitCanvas(tc.termW, tc.termH, 400, 600)
		if w != tc.w || h != tc.h {
			t.Errorf("fitCanvas(%d, %d) = %dx%d, expected %dx%d", tc.termW, tc.termH, w, h, tc.w, tc.h)
		}
	}
}

func TestModelStartsOnEnter(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = tick(t, m)
	if m.State().Running {
		t.Fatal("game should wait on the start overlay")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if !m.State().Running {
		t.Error("enter should start the game on the next frame")
	}
}

func TestModelStartsOnClick(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)

	if !m.State().Running {
		t.Error("a left click should start the game")
	}
}

func TestModelFlap(t *testing.T) {
	m, game := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)

	if v := game.Session().Bird.Velocity; v != -5.5 {
		t.Errorf("velocity after flap frame = %v, expected -5.5", v)
	}

	// Input is consumed by one frame
	tick(t, m)
	if v := game.Session().Bird.Velocity; v != -5 {
		t.Errorf("velocity one frame later = %v, expected -5", v)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	// The loop is stopped, so ticks no longer reschedule
	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("ticks after quit should not schedule more ticks")
	}
}

func TestModelSavesScoreOnCrash(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store, WithPlayer("ann"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	s := game.Session()
	s.Score = 4
	s.Bird.Y = 495
	m = tick(t, m)

	if m.State().Running {
		t.Fatal("bird on the ground should end the session")
	}

	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 4 || scores[0].Player != "ann" {
		t.Errorf("stored scores = %+v, expected ann/4", scores)
	}

	// Zero scores are not stored
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	game.Session().Bird.Y = 495
	tick(t, m)

	scores, _ = store.TopScores(game.ID(), 10)
	if len(scores) != 1 {
		t.Errorf("a zero score should not be saved, have %d scores", len(scores))
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.State().Running {
		t.Error("resizing should not reset the game")
	}
	if w, h := m.run.screen.Width(), m.run.screen.Height(); w != 53 || h != 40 {
		t.Errorf("screen = %dx%d, expected 53x40", w, h)
	}

	m = tick(t, m)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Errorf("view has %d lines, expected the terminal height 40", len(lines))
	}
}

func TestModelViewShowsCanvas(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = tick(t, m)

	view := m.View()
	if !strings.Contains(view, "▀") {
		t.Error("view should contain half-block pixels")
	}
	if !strings.Contains(view, "CACTUS FLAP") {
		t.Error("view should show the start overlay title")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, nil, WithScreenshotDir(dir))

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		t.Fatalf("Glob() failed: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expected one screenshot, found %v", files)
	}
}
