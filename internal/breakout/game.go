// Package breakout is the brick breaker simulation: entity motion, circle
// versus box collision, and the Menu/Active/Win state machine that turns
// collisions into score, lost lives and level changes.
//
// The package performs no I/O during play and never reads the clock; the
// caller passes the frame time to Update.
package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

// Mode is the coarse game state.
type Mode int

const (
	ModeMenu Mode = iota
	ModeActive
	ModeWin
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeActive:
		return "active"
	case ModeWin:
		return "win"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Steer is the paddle movement direction.
type Steer int

const (
	SteerLeft  Steer = -1
	SteerRight Steer = 1
)

// ErrNoLevels is returned by New when no level specs are given.
var ErrNoLevels = errors.New("breakout: no levels")

// Renderer draws one textured rectangle. Draw is the only call the game makes.
type Renderer interface {
	Draw(tex resource.Handle, pos, size core.Vec2, tint core.Color)
}

// StepResult reports what happened during one Update.
type StepResult struct {
	BricksDestroyed int
	Points          int  // Score gained this frame
	BallLost        bool // Ball fell past the bottom edge
	GameOver        bool // The last life was lost; the level was reloaded
	LevelCleared    bool // Every breakable brick is gone; mode is now Win

	// Set when GameOver or LevelCleared ends a run.
	FinalScore int
	LevelID    string
	LevelName  string
}

// RunEnded reports whether the frame finished a run worth recording.
func (r StepResult) RunEnded() bool {
	return r.GameOver || r.LevelCleared
}

// Game owns every entity. It is not safe for concurrent use.
type Game struct {
	ball   Ball
	paddle Entity

	specs  []LevelSpec
	levels []*Level
	active int

	mode  Mode
	lives int
	score int

	// Fixed settings
	width, height  float32
	paddleSize     core.Vec2
	paddleSpeed    float32
	speedMul       float32
	ballRadius     float32
	launchVelocity core.Vec2
	strength       float32
	initialLives   int
	brickPoints    int
	tex            Textures
}

// New builds a game from configuration, a texture table and level specs.
// The game starts in ModeActive on the first level with the ball on the paddle.
func New(cfg config.BreakoutConfig, res *resource.Manager, specs []LevelSpec) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, ErrNoLevels
	}
	tex, err := ResolveTextures(res)
	if err != nil {
		return nil, err
	}

	g := &Game{
		specs:          specs,
		levels:         make([]*Level, len(specs)),
		mode:           ModeActive,
		lives:          cfg.Gameplay.Lives,
		width:          cfg.Screen.Width,
		height:         cfg.Screen.Height,
		paddleSize:     core.V2(cfg.Paddle.Width, cfg.Paddle.Height),
		paddleSpeed:    cfg.Paddle.Velocity,
		speedMul:       cfg.Paddle.SpeedMultiplier,
		ballRadius:     cfg.Ball.Radius,
		launchVelocity: core.V2(cfg.Ball.Velocity.X, cfg.Ball.Velocity.Y),
		strength:       cfg.Gameplay.BounceStrength,
		initialLives:   cfg.Gameplay.Lives,
		brickPoints:    cfg.Gameplay.BrickPoints,
		tex:            tex,
	}
	for i := range specs {
		g.loadLevel(i)
	}
	g.ball = NewBall(core.Vec2{}, g.ballRadius, g.launchVelocity, tex.Face)
	g.resetPlayer()
	return g, nil
}

// Update advances the simulation by dt seconds. Outside ModeActive it does nothing.
func (g *Game) Update(dt float32) StepResult {
	var res StepResult
	if g.mode != ModeActive {
		return res
	}

	g.ball.Move(dt, g.width)
	g.doCollisions(&res)

	if g.ball.Position.Y >= g.height {
		res.BallLost = true
		g.lives--
		if g.lives <= 0 {
			res.GameOver = true
			g.endRun(&res)
			g.loadLevel(g.active)
			g.mode = ModeActive
		}
		g.resetPlayer()
	}

	if g.mode == ModeActive && g.levels[g.active].Completed() {
		res.LevelCleared = true
		g.endRun(&res)
		g.loadLevel(g.active)
		g.resetPlayer()
		g.mode = ModeWin
	}
	return res
}

// doCollisions tests every live brick in order, then the paddle. Every hit is
// applied against the ball as it stands after the previous one.
func (g *Game) doCollisions(res *StepResult) {
	lvl := g.levels[g.active]
	for i := range lvl.Bricks {
		brick := &lvl.Bricks[i]
		if brick.Destroyed {
			continue
		}
		c := Resolve(g.ball, *brick)
		if !c.Hit {
			continue
		}
		if !brick.Solid {
			brick.Destroyed = true
			res.BricksDestroyed++
			res.Points += brick.Points
			g.score += brick.Points
		}
		bounce(&g.ball, c)
	}

	if g.ball.Stuck {
		return
	}
	if c := Resolve(g.ball, g.paddle); c.Hit {
		g.bouncePaddle()
	}
}

// bouncePaddle steers the ball by where it struck the paddle and keeps its speed.
func (g *Game) bouncePaddle() {
	half := g.paddle.Size.X / 2
	centerX := g.paddle.Position.X + half
	pct := (g.ball.Center().X - centerX) / half

	old := g.ball.Velocity
	v := core.V2(g.launchVelocity.X*pct*g.strength, -core.AbsF32(old.Y))
	if v.IsZero() {
		v = core.V2(0, -1)
	}
	g.ball.Velocity = v.Normalize().Scale(old.Length())
}

func (g *Game) endRun(res *StepResult) {
	res.FinalScore = g.score
	res.LevelID = g.levels[g.active].ID
	res.LevelName = g.levels[g.active].Name
	g.score = 0
	g.lives = g.initialLives
}

func (g *Game) loadLevel(i int) {
	g.levels[i] = NewLevel(g.specs[i], g.width, g.height/2, g.tex, g.brickPoints)
}

// resetPlayer centers the paddle on the bottom edge and sticks the ball to it.
func (g *Game) resetPlayer() {
	g.paddle = Entity{
		Position: core.V2(g.width/2-g.paddleSize.X/2, g.height-g.paddleSize.Y),
		Size:     g.paddleSize,
		Tint:     core.White,
		Texture:  g.tex.Paddle,
	}
	g.ball.Reset(g.stuckBallPosition(), g.launchVelocity)
}

func (g *Game) stuckBallPosition() core.Vec2 {
	return g.paddle.Position.Add(core.V2(g.paddle.Size.X/2-g.ballRadius, -2*g.ballRadius))
}

// MovePaddle slides the paddle for dt seconds, clamped to the level.
// A stuck ball rides along. Only works in ModeActive.
func (g *Game) MovePaddle(dir Steer, dt float32) {
	if g.mode != ModeActive {
		return
	}
	old := g.paddle.Position.X
	x := old + float32(dir)*g.paddleSpeed*dt*g.speedMul
	x = core.ClampF32(x, 0, g.width-g.paddle.Size.X)
	g.paddle.Position.X = x
	if g.ball.Stuck {
		g.ball.Position.X += x - old
	}
}

// LaunchBall releases a stuck ball.
func (g *Game) LaunchBall() {
	if g.mode != ModeActive {
		return
	}
	g.ball.Stuck = false
}

// CycleLevel moves to the next or previous level, wrapping both ways.
// Lives and bricks are left as they are.
func (g *Game) CycleLevel(forward bool) {
	n := len(g.levels)
	if forward {
		g.active = (g.active + 1) % n
	} else {
		g.active = (g.active - 1 + n) % n
	}
}

// SetLevel selects a level by index, modulo the level count.
func (g *Game) SetLevel(i int) {
	n := len(g.levels)
	g.active = ((i % n) + n) % n
}

// Confirm advances Win to Menu and Menu to Active.
func (g *Game) Confirm() {
	switch g.mode {
	case ModeWin:
		g.mode = ModeMenu
	case ModeMenu:
		g.mode = ModeActive
	}
}

// Draw emits the background, live bricks, paddle and ball, in that order.
func (g *Game) Draw(r Renderer) {
	r.Draw(g.tex.Background, core.Vec2{}, core.V2(g.width, g.height), core.White)
	for _, b := range g.levels[g.active].Bricks {
		if b.Destroyed {
			continue
		}
		r.Draw(b.Texture, b.Position, b.Size, b.Tint)
	}
	r.Draw(g.paddle.Texture, g.paddle.Position, g.paddle.Size, g.paddle.Tint)
	r.Draw(g.ball.Texture, g.ball.Position, g.ball.Size, g.ball.Tint)
}

// Mode returns the current mode.
func (g *Game) Mode() Mode { return g.mode }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Score returns the score of the current run.
func (g *Game) Score() int { return g.score }

// LevelIndex returns the active level index.
func (g *Game) LevelIndex() int { return g.active }

// LevelCount returns the number of levels.
func (g *Game) LevelCount() int { return len(g.levels) }

// LevelID returns the active level's ID.
func (g *Game) LevelID() string { return g.levels[g.active].ID }

// LevelName returns the active level's display name.
func (g *Game) LevelName() string { return g.levels[g.active].Name }

// Level returns the active level. Callers must not modify it.
func (g *Game) Level() *Level { return g.levels[g.active] }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Entity { return g.paddle }

// Size returns the level's pixel dimensions.
func (g *Game) Size() core.Vec2 { return core.V2(g.width, g.height) }
