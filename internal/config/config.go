// Package config provides YAML-based configuration loading and difficulty
// presets for the brick breaker.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// BreakoutConfig contains all configuration for the game.
type BreakoutConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Levels   LevelsConfig   `yaml:"levels"`
	Textures string         `yaml:"textures"` // Path to a texture table; empty uses the embedded one
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig defines the level pixel space. Bricks fill the top half.
type ScreenConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width           float32 `yaml:"width"`
	Height          float32 `yaml:"height"`
	Velocity        float32 `yaml:"velocity"`         // Pixels per second
	SpeedMultiplier float32 `yaml:"speed_multiplier"` // Applied on top of velocity
}

// BallConfig defines the ball and its launch vector.
type BallConfig struct {
	Radius   float32 `yaml:"radius"`
	Velocity Vector  `yaml:"velocity"` // Initial launch velocity, pixels per second
}

// Vector is a YAML-friendly 2D value.
type Vector struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// GameplayConfig defines rules.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	BounceStrength float32 `yaml:"bounce_strength"` // Paddle deflection factor
	BrickPoints    int     `yaml:"brick_points"`    // Points per tile value of a destroyed brick
}

// LevelsConfig lists the level files in play order.
type LevelsConfig struct {
	Dir   string   `yaml:"dir"` // Empty uses the embedded level set
	Files []string `yaml:"files"`
}

// InputConfig tunes the terminal input layer.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press keeps the paddle moving
}

// Validate reports the first value that would corrupt the simulation.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %gx%g", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size %gx%g", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.Screen.Width:
		return fmt.Errorf("%w: paddle wider than screen", ErrInvalid)
	case c.Paddle.Velocity <= 0 || c.Paddle.SpeedMultiplier <= 0:
		return fmt.Errorf("%w: paddle velocity %g x%g", ErrInvalid, c.Paddle.Velocity, c.Paddle.SpeedMultiplier)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius %g", ErrInvalid, c.Ball.Radius)
	case c.Ball.Velocity.Y >= 0:
		return fmt.Errorf("%w: ball velocity y %g, launch must go upward", ErrInvalid, c.Ball.Velocity.Y)
	case c.Gameplay.BounceStrength < 0:
		return fmt.Errorf("%w: bounce strength %g", ErrInvalid, c.Gameplay.BounceStrength)
	case c.Gameplay.BrickPoints < 0:
		return fmt.Errorf("%w: brick points %d", ErrInvalid, c.Gameplay.BrickPoints)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives %d", ErrInvalid, c.Gameplay.Lives)
	case len(c.Levels.Files) == 0:
		return fmt.Errorf("%w: no level files", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset adjusts gameplay for a difficulty preset.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width *= 1.4
		cfg.Ball.Velocity = cfg.Ball.Velocity.scale(0.8)
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.8
		cfg.Ball.Velocity = cfg.Ball.Velocity.scale(1.25)
	}
}

func (v Vector) scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}
