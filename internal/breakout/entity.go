package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Entity is a positioned, sized game object: the paddle or a brick.
// Position is the top-left corner in level pixel space, y grows downward.
type Entity struct {
	Position core.Vec2
	Size     core.Vec2
	Velocity core.Vec2
	Tint     core.Color
	Texture  resource.Handle

	Solid     bool // Indestructible brick
	Destroyed bool // Skipped by collision and drawing until the level reloads
	Points    int  // Score for destroying it
}

// Center returns the midpoint of the entity's box.
func (e Entity) Center() core.Vec2 {
	return e.Position.Add(e.HalfExtents())
}

// HalfExtents returns half the entity's size.
func (e Entity) HalfExtents() core.Vec2 {
	return e.Size.Scale(0.5)
}

// Ball is the circular entity. Its Size is always (2r, 2r).
type Ball struct {
	Entity
	Radius float32
	Stuck  bool // Resting on the paddle; Velocity holds the launch vector
}

// NewBall creates a ball resting at pos.
func NewBall(pos core.Vec2, radius float32, velocity core.Vec2, tex resource.Handle) Ball {
	return Ball{
		Entity: Entity{
			Position: pos,
			Size:     core.V2(radius*2, radius*2),
			Velocity: velocity,
			Tint:     core.White,
			Texture:  tex,
		},
		Radius: radius,
		Stuck:  true,
	}
}

// Center returns the circle's center.
func (b Ball) Center() core.Vec2 {
	return b.Position.Add(core.V2(b.Radius, b.Radius))
}

// Move integrates the ball and bounces it off the left, right and top walls.
// There is no bottom wall. A stuck ball does not move.
func (b *Ball) Move(dt, width float32) core.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.Position.X <= 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = 0
	} else if b.Position.X+b.Size.X >= width {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = width - b.Size.X
	}
	if b.Position.Y <= 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = 0
	}
	return b.Position
}

// Reset puts the ball back on the paddle with the given launch velocity.
func (b *Ball) Reset(pos, velocity core.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
}
