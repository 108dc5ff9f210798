package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:           100,
			Height:          20,
			Velocity:        500,
			SpeedMultiplier: 1,
		},
		Ball: BallConfig{
			Radius:   12.5,
			Velocity: Vector{X: 100, Y: -350},
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			BounceStrength: 2,
			BrickPoints:    10,
		},
		Levels: LevelsConfig{
			Files: []string{"standard.lvl", "gaps.lvl", "space_invader.lvl", "bounce_galore.lvl"},
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
