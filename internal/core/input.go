package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionPause             // Space, P - start / pause / resume
	ActionRestart           // R - reset to a fresh idle game
	ActionToggleMode        // M - switch walls / pass-through (not while playing)
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames.
// Order is preserved so that several turns pressed within one frame are
// replayed in the sequence the player typed them.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
