package mouse

import (
	"time"

	"github.com/dshills/tagedit/internal/input/key"
)

// Tracker converts button-state reports into actions.
type Tracker struct {
	// held is the button currently held, ButtonNone if none.
	held Button
}

// NewTracker creates a tracker with no button held.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Held returns the button currently held.
func (t *Tracker) Held() Button {
	return t.held
}

// Translate turns one report of the buttons held at (x, y) into an event.
// A wheel report is always a wheel action. A button appearing is a press, a
// held button that stays is a drag, and buttons disappearing is a release
// of the previously held button.
func (t *Tracker) Translate(x, y int, buttons Button, mods key.Modifier, at time.Time) Event {
	ev := Event{X: x, Y: y, Modifiers: mods, Timestamp: at}

	switch {
	case buttons == ButtonWheelUp:
		ev.Button, ev.Action = buttons, ActionWheelUp
	case buttons == ButtonWheelDown:
		ev.Button, ev.Action = buttons, ActionWheelDown
	case buttons == ButtonNone && t.held != ButtonNone:
		ev.Button, ev.Action = t.held, ActionRelease
		t.held = ButtonNone
	case buttons == ButtonNone:
		ev.Action = ActionMove
	case t.held == buttons:
		ev.Button, ev.Action = buttons, ActionDrag
	default:
		ev.Button, ev.Action = buttons, ActionPress
		t.held = buttons
	}
	return ev
}
