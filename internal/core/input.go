package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys or typed tokens into actions; the game only sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // Q, Ctrl+C - exit session
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove returns true for the four directional actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// ActionFromKey maps a key name or typed token to an action.
// Key names follow Bubble Tea's KeyMsg.String() ("up", "ctrl+c").
// Matching ignores case and surrounding whitespace.
func ActionFromKey(key string) Action {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "w", "up":
		return ActionUp
	case "s", "down":
		return ActionDown
	case "a", "left":
		return ActionLeft
	case "d", "right":
		return ActionRight
	case "q", "ctrl+c":
		return ActionQuit
	}
	return ActionNone
}
