package core

import "fmt"

// Color is an RGB tint with components in [0, 1].
// The zero value renders with the terminal's default foreground.
type Color struct {
	R, G, B float32
}

// RGB is shorthand for Color{R: r, G: g, B: b}.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// White is the neutral tint.
var White = RGB(1, 1, 1)

// IsZero reports whether c is the zero (default) color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns c as a "#rrggbb" string suitable for lipgloss.Color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) uint8 {
	return uint8(ClampF32(v, 0, 1)*255 + 0.5)
}
