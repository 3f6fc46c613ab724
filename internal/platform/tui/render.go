package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cactusflap/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the
// default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors are grouped to minimize ANSI escape sequences.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	type colors struct{ fg, bg core.Color }
	styles := make(map[colors]lipgloss.Style)
	styleFor := func(c colors) lipgloss.Style {
		if st, ok := styles[c]; ok {
			return st
		}
		st := r.NewStyle()
		if c.fg.Set {
			st = st.Foreground(lipgloss.Color(c.fg.Hex()))
		}
		if c.bg.Set {
			st = st.Background(lipgloss.Color(c.bg.Hex()))
		}
		styles[c] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colors{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colors{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
