// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in level pixel space.
// The origin is the top-left corner and y grows downward.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y)))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ClampVec restricts each component of v to [lo, hi] of the same axis.
func ClampVec(v, lo, hi Vec2) Vec2 {
	return Vec2{X: ClampF32(v.X, lo.X, hi.X), Y: ClampF32(v.Y, lo.Y, hi.Y)}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of two rectangles, or the zero Rect
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ClampF32 restricts a float32 value to be within [min, max].
func ClampF32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF32 returns the absolute value of x.
func AbsF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
