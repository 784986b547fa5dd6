package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification such as "C-a", "S-Left" or "Enter".
// Modifiers are separated from the key by hyphens; a trailing "-" is the
// minus key.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	var mods Modifier
	rest := spec
	for {
		i := strings.Index(rest, "-")
		if i <= 0 || i == len(rest)-1 {
			break
		}
		mod, ok := parseModifier(rest[:i])
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, rest[:i], spec)
		}
		mods = mods.With(mod)
		rest = rest[i+1:]
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		return Event{Key: KeyRune, Rune: r, Modifiers: mods}, nil
	}
	if k, ok := lookupKey(rest); ok {
		return Event{Key: k, Modifiers: mods}, nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidSpec, rest, spec)
}

// MustParse is like Parse but panics on error. It is meant for static
// binding tables.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}
