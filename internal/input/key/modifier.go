package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key.
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// prefixes lists modifier prefixes in canonical order.
var prefixes = []struct {
	mod    Modifier
	prefix string
}{
	{ModCtrl, "C"},
	{ModAlt, "A"},
	{ModMeta, "M"},
	{ModShift, "S"},
}

// String returns the short form, e.g. "C-S".
func (m Modifier) String() string {
	var parts []string
	for _, p := range prefixes {
		if m.Has(p.mod) {
			parts = append(parts, p.prefix)
		}
	}
	return strings.Join(parts, "-")
}

func parseModifier(s string) (Modifier, bool) {
	for _, p := range prefixes {
		if strings.EqualFold(s, p.prefix) {
			return p.mod, true
		}
	}
	switch strings.ToLower(s) {
	case "ctrl":
		return ModCtrl, true
	case "shift":
		return ModShift, true
	case "alt":
		return ModAlt, true
	case "meta":
		return ModMeta, true
	}
	return ModNone, false
}
