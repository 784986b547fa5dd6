package mouse

import (
	"time"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonWheelUp indicates scroll wheel up.
	ButtonWheelUp
	// ButtonWheelDown indicates scroll wheel down.
	ButtonWheelDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheel-up"
	case ButtonWheelDown:
		return "wheel-down"
	default:
		return "none"
	}
}

// IsWheel returns true if this is a wheel button.
func (b Button) IsWheel() bool {
	return b == ButtonWheelUp || b == ButtonWheelDown
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates movement with no button held.
	ActionMove
	// ActionDrag indicates movement with a button held.
	ActionDrag
	// ActionWheelUp indicates one wheel step up.
	ActionWheelUp
	// ActionWheelDown indicates one wheel step down.
	ActionWheelDown
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	case ActionWheelUp:
		return "wheel-up"
	case ActionWheelDown:
		return "wheel-down"
	default:
		return "none"
	}
}

// IsWheel returns true for wheel actions.
func (a Action) IsWheel() bool {
	return a == ActionWheelUp || a == ActionWheelDown
}

// WheelDirection returns -1 for wheel up, 1 for wheel down and 0 otherwise.
func (a Action) WheelDirection() int {
	switch a {
	case ActionWheelUp:
		return -1
	case ActionWheelDown:
		return 1
	}
	return 0
}

// Event represents a mouse input event.
type Event struct {
	// X and Y are screen cell coordinates.
	X, Y int

	// Button is the mouse button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of mouse action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Pos returns the event position as a point.
func (e Event) Pos() buffer.Point {
	return buffer.Point{X: e.X, Y: e.Y}
}
