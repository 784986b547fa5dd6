package key

import "strings"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyRune:      "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// Direction returns -1 for keys that move or delete backwards, 1 for keys
// that move or delete forwards, and 0 for every other key.
func (k Key) Direction() int {
	switch k {
	case KeyLeft, KeyUp, KeyPageUp, KeyHome, KeyBackspace:
		return -1
	case KeyRight, KeyDown, KeyPageDown, KeyEnd, KeyDelete:
		return 1
	}
	return 0
}

// IsDeletion returns true for Backspace and Delete.
func (k Key) IsDeletion() bool {
	return k == KeyBackspace || k == KeyDelete
}

// lookupKey returns the key with the given name, ignoring case.
func lookupKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if k == KeyNone || k == KeyRune {
			continue
		}
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	if alias, ok := keyAliases[strings.ToLower(name)]; ok {
		return alias, true
	}
	return KeyNone, false
}

var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"cr":     KeyEnter,
	"return": KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
	"ins":    KeyInsert,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
}
