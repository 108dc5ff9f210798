package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - move paddle left
	ActionRight             // D, Right arrow - move paddle right
	ActionLaunch            // Space - release the ball from the paddle
	ActionNextLevel         // W - cycle level forward
	ActionPrevLevel         // S - cycle level backward
	ActionConfirm           // Enter - leave the win screen / start from the menu
	ActionPause             // P, Esc - pause/unpause
	ActionScores            // Tab - open the scoreboard
	ActionScreenshot        // Ctrl+S - dump the screen to a text file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPrevLevel:
		return "PrevLevel"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the discrete actions triggered between two frames.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
