package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// ScreenRenderer draws level pixel space into a rectangle of screen cells.
// Textures marked as points draw a single glyph at the center of their box
// instead of filling it.
type ScreenRenderer struct {
	screen   *core.Screen
	textures *resource.Manager
	level    core.Vec2 // Level size in pixels
	view     core.Rect // Target cells
	points   map[resource.Handle]bool
}

// NewScreenRenderer creates a renderer for a level of the given pixel size.
func NewScreenRenderer(screen *core.Screen, textures *resource.Manager, level core.Vec2, view core.Rect) *ScreenRenderer {
	return &ScreenRenderer{
		screen:   screen,
		textures: textures,
		level:    level,
		view:     view,
		points:   make(map[resource.Handle]bool),
	}
}

// SetView moves the target rectangle, e.g. after a resize.
func (r *ScreenRenderer) SetView(view core.Rect) {
	r.view = view
}

// View returns the target rectangle.
func (r *ScreenRenderer) View() core.Rect {
	return r.view
}

// DrawAsPoint makes a texture draw as one glyph at its center.
func (r *ScreenRenderer) DrawAsPoint(h resource.Handle) {
	r.points[h] = true
}

// Draw implements breakout.Renderer.
func (r *ScreenRenderer) Draw(tex resource.Handle, pos, size core.Vec2, tint core.Color) {
	if r.view.Empty() {
		return
	}
	cell := core.Cell{Rune: r.textures.Texture(tex).Rune(), Color: tint}
	if cell.Rune == 0 {
		return
	}

	if r.points[tex] {
		c := pos.Add(size.Scale(0.5))
		x, y := r.cellX(c.X), r.cellY(c.Y)
		if x >= r.view.Right() {
			x = r.view.Right() - 1
		}
		if y >= r.view.Bottom() {
			return // Below the field: the ball is falling out
		}
		r.screen.SetCell(x, y, cell)
		return
	}

	x0, y0 := r.cellX(pos.X), r.cellY(pos.Y)
	x1, y1 := r.cellX(pos.X+size.X), r.cellY(pos.Y+size.Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	rect := core.NewRect(x0, y0, x1-x0, y1-y0)
	r.screen.FillRect(rect.Intersect(r.view), cell)
}

func (r *ScreenRenderer) cellX(px float32) int {
	return r.view.X + int(math.Floor(float64(px*float32(r.view.W)/r.level.X)))
}

func (r *ScreenRenderer) cellY(py float32) int {
	return r.view.Y + int(math.Floor(float64(py*float32(r.view.H)/r.level.Y)))
}
