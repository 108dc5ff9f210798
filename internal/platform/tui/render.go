package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Painter turns a Screen buffer into styled terminal text. Each session owns
// one, bound to its own lipgloss renderer so color detection follows the
// client terminal.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPainter creates a painter. A nil renderer uses lipgloss's default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
	}
}

// Style returns a renderer-bound style.
func (p *Painter) Style() lipgloss.Style {
	return p.renderer.NewStyle()
}

// style returns the cached foreground style for a tint. The zero Color is unstyled.
func (p *Painter) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if !c.IsZero() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	p.styles[c] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
