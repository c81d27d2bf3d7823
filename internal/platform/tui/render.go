package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// painter turns cell styles into lipgloss styles for one renderer. Styles
// are cached because a frame reuses only a handful of colour pairs.
type painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Style]lipgloss.Style
}

func newPainter(r *lipgloss.Renderer) *painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &painter{
		renderer: r,
		styles:   make(map[core.Style]lipgloss.Style),
	}
}

func (p *painter) style(st core.Style) lipgloss.Style {
	if s, ok := p.styles[st]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if st.Fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(st.Fg))
	}
	if st.Bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(st.Bg))
	}
	p.styles[st] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped to keep escape sequences short.
func (p *painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

