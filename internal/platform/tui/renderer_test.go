package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

func newTestRenderer(w, h int, view core.Rect) (*ScreenRenderer, *core.Screen, *resource.Manager) {
	screen := core.NewScreen(w, h)
	res := resource.Default()
	r := NewScreenRenderer(screen, res, core.V2(100, 100), view)
	r.DrawAsPoint(res.MustLookup(resource.Face))
	return r, screen, res
}

func countRune(s *core.Screen, r rune) int {
	n := 0
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestScreenRendererScaling(t *testing.T) {
	tests := []struct {
		name      string
		pos, size core.Vec2
		view      core.Rect
		cells     int
		first     [2]int
	}{
		{"full width row", core.V2(0, 0), core.V2(100, 10), core.NewRect(0, 0, 10, 10), 10, [2]int{0, 0}},
		{"quarter block", core.V2(50, 50), core.V2(20, 20), core.NewRect(0, 0, 10, 10), 4, [2]int{5, 5}},
		{"sub-cell size still draws", core.V2(33, 33), core.V2(1, 1), core.NewRect(0, 0, 10, 10), 1, [2]int{3, 3}},
		{"offset view", core.V2(0, 0), core.V2(10, 10), core.NewRect(2, 3, 10, 10), 1, [2]int{2, 3}},
		{"clipped at the edge", core.V2(95, 0), core.V2(20, 10), core.NewRect(0, 0, 10, 10), 1, [2]int{9, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, screen, res := newTestRenderer(20, 20, tt.view)
			block := res.MustLookup(resource.Block)
			glyph := res.Texture(block).Rune()

			r.Draw(block, tt.pos, tt.size, core.RGB(1, 0, 0))

			if got := countRune(screen, glyph); got != tt.cells {
				t.Errorf("filled %d cells, expected %d", got, tt.cells)
			}
			cell := screen.GetCell(tt.first[0], tt.first[1])
			if cell.Rune != glyph || cell.Color != core.RGB(1, 0, 0) {
				t.Errorf("cell (%d,%d) = %+v", tt.first[0], tt.first[1], cell)
			}
		})
	}
}

func TestScreenRendererPointTexture(t *testing.T) {
	r, screen, res := newTestRenderer(10, 10, core.NewRect(0, 0, 10, 10))
	face := res.MustLookup(resource.Face)

	r.Draw(face, core.V2(40, 40), core.V2(25, 25), core.White)

	if got := countRune(screen, res.Texture(face).Rune()); got != 1 {
		t.Fatalf("point texture filled %d cells, expected 1", got)
	}
	if screen.Get(5, 5) != res.Texture(face).Rune() {
		t.Error("point texture should sit at the box center")
	}

	// Below the field: not drawn
	screen.Clear()
	r.Draw(face, core.V2(40, 120), core.V2(25, 25), core.White)
	if countRune(screen, res.Texture(face).Rune()) != 0 {
		t.Error("ball below the field should not be drawn")
	}
}

func TestScreenRendererEmptyView(t *testing.T) {
	r, screen, res := newTestRenderer(10, 10, core.Rect{})
	block := res.MustLookup(resource.Block)
	r.Draw(block, core.V2(0, 0), core.V2(100, 100), core.White)
	if countRune(screen, res.Texture(block).Rune()) != 0 {
		t.Error("empty view should draw nothing")
	}
}

func TestPainterPlainOutput(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "ab")
	screen.SetCell(2, 0, core.Cell{Rune: 'x', Color: core.RGB(1, 0, 0)})
	screen.DrawText(0, 1, "row two")

	p := NewPainter(lipgloss.NewRenderer(io.Discard))
	if got, want := p.Render(screen), screen.String(); got != want {
		t.Errorf("Render() = %q, expected %q", got, want)
	}
}
