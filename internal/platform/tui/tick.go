// Package tui runs the brick breaker in a terminal with Bubble Tea, locally
// or per SSH session. It owns the clock, the key bindings and the drawing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps a single simulation step so a stalled terminal does not
// teleport the ball through bricks.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick and
// clock jumps backwards yield zero.
func frameDelta(prev, now time.Time) float32 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	d := now.Sub(prev)
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return float32(d.Seconds())
}
