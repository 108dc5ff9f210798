package core

import "time"

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 60

// Terminal describes the character grid and frame rate a session runs at.
type Terminal struct {
	Width  int // Columns
	Height int // Rows
	FPS    int // Ticks per second
}

// DefaultTerminal is assumed until the first size report arrives.
func DefaultTerminal() Terminal {
	return Terminal{Width: 80, Height: 24, FPS: DefaultFPS}
}

// Fits reports whether the terminal has at least w columns and h rows.
func (t Terminal) Fits(w, h int) bool {
	return t.Width >= w && t.Height >= h
}

// FrameInterval returns the time between ticks. Non-positive FPS falls back
// to DefaultFPS.
func (t Terminal) FrameInterval() time.Duration {
	fps := t.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
