package core

import (
	"testing"
	"time"
)

func TestTerminalFits(t *testing.T) {
	term := Terminal{Width: 40, Height: 12}
	tests := []struct {
		w, h int
		want bool
	}{
		{40, 12, true},
		{30, 10, true},
		{41, 12, false},
		{40, 13, false},
	}
	for _, tt := range tests {
		if got := term.Fits(tt.w, tt.h); got != tt.want {
			t.Errorf("Fits(%d, %d) = %v, expected %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestTerminalFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / DefaultFPS},
		{-5, time.Second / DefaultFPS},
	}
	for _, tt := range tests {
		if got := (Terminal{FPS: tt.fps}).FrameInterval(); got != tt.want {
			t.Errorf("FPS %d: FrameInterval() = %v, expected %v", tt.fps, got, tt.want)
		}
	}
}
