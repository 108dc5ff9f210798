package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction names the face of a box that the ball struck.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// compass holds the unit vector for each Direction, in tie-break order.
var compass = [...]core.Vec2{
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Collision is the result of testing a ball against a box.
// Delta points from the circle's center to the closest point on the box.
type Collision struct {
	Hit   bool
	Dir   Direction
	Delta core.Vec2
}

// VectorDirection returns the compass direction closest to v.
// Ties go to the earliest direction in Up, Right, Down, Left order.
func VectorDirection(v core.Vec2) Direction {
	n := v.Normalize()
	best := Up
	bestDot := float32(-2)
	for d, c := range compass {
		if dot := n.Dot(c); dot > bestDot {
			bestDot = dot
			best = Direction(d)
		}
	}
	return best
}

// Resolve tests a circle against an axis-aligned box. It has no side effects.
// A ball whose center sits exactly on the box's closest point is a miss.
// It panics on a non-positive radius or box size.
func Resolve(ball Ball, box Entity) Collision {
	if ball.Radius <= 0 {
		panic(fmt.Sprintf("breakout: resolve with radius %g", ball.Radius))
	}
	if box.Size.X <= 0 || box.Size.Y <= 0 {
		panic(fmt.Sprintf("breakout: resolve with box size %gx%g", box.Size.X, box.Size.Y))
	}

	center := ball.Center()
	half := box.HalfExtents()
	boxCenter := box.Position.Add(half)

	clamped := core.ClampVec(center.Sub(boxCenter), half.Scale(-1), half)
	closest := boxCenter.Add(clamped)
	delta := closest.Sub(center)

	if delta.IsZero() || delta.Length() >= ball.Radius {
		return Collision{Delta: delta}
	}
	return Collision{Hit: true, Dir: VectorDirection(delta), Delta: delta}
}

// bounce reflects the ball off the struck face and pushes it out of the box.
func bounce(ball *Ball, c Collision) {
	switch c.Dir {
	case Left, Right:
		ball.Velocity.X = -ball.Velocity.X
		pen := ball.Radius - core.AbsF32(c.Delta.X)
		if c.Dir == Left {
			ball.Position.X += pen
		} else {
			ball.Position.X -= pen
		}
	case Up, Down:
		ball.Velocity.Y = -ball.Velocity.Y
		pen := ball.Radius - core.AbsF32(c.Delta.Y)
		if c.Dir == Up {
			ball.Position.Y -= pen
		} else {
			ball.Position.Y += pen
		}
	}
}
