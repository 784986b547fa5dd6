package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Seq identifies the physical key press. Zero means unknown.
	Seq uint64

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return NewEvent(KeyRune, r, mods)
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return NewEvent(key, 0, mods)
}

// WithSeq returns a copy of the event with sequence number seq.
func (e Event) WithSeq(seq uint64) Event {
	e.Seq = seq
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character typed without Ctrl
// or Alt.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.Modifiers.Has(ModCtrl|ModAlt) && unicode.IsPrint(e.Rune)
}

// String returns the short form, e.g. "C-a", "S-Left", "x".
func (e Event) String() string {
	mods := e.Modifiers
	var name string
	switch e.Key {
	case KeyRune:
		// Shift is part of the character.
		mods = mods.Without(ModShift)
		name = string(unicode.ToLower(e.Rune))
		if !mods.HasCtrl() {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	if prefix := mods.String(); prefix != "" {
		return prefix + "-" + name
	}
	return name
}

// Equals returns true if two events represent the same key press.
// Sequence numbers and timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	if e.Key == KeyRune && e.Modifiers.HasCtrl() {
		// Terminals report Ctrl+letter without case.
		return parsed.Key == KeyRune &&
			unicode.ToLower(parsed.Rune) == unicode.ToLower(e.Rune) &&
			parsed.Modifiers == e.Modifiers.Without(ModShift)
	}
	return e.Equals(parsed)
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Seq: %d}",
		e.Key.String(), e.Rune, e.Modifiers.String(), e.Seq)
}
