package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate their own key events into actions; the game only sees these.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - menu cursor up, climb
	ActionDown           // Down arrow - menu cursor down, descend
	ActionLeft           // Left arrow
	ActionRight          // Right arrow
	ActionConfirm        // Enter - start game, return to menu
	ActionTakeoff        // Space - attempt takeoff
	ActionQuit           // Q, Ctrl+C - exit (handled by the host)
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
	case ActionConfirm:
		return "Confirm"
	case ActionTakeoff:
		return "Takeoff"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
