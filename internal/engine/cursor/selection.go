package cursor

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the cursor.
// When Anchor == Head, this represents a cursor with no selection.
type Selection struct {
	Anchor Point // Where selection started
	Head   Point // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Point) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// FromMark builds the selection for a mark and the cursor position.
// An inactive mark yields an empty selection at head.
func FromMark(m Mark, head Point) Selection {
	if !m.Active {
		return Selection{Anchor: head, Head: head}
	}
	return Selection{Anchor: m.Pos, Head: head}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Point {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() Point {
	if s.Anchor.Compare(s.Head) >= 0 {
		return s.Anchor
	}
	return s.Head
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return s.Head.Compare(s.Anchor) >= 0
}

// Normalize returns a forward selection (anchor <= head).
func (s Selection) Normalize() Selection {
	return Selection{Anchor: s.Start(), Head: s.End()}
}

// CoversLine returns true if line y lies within the selection's rows.
func (s Selection) CoversLine(y int) bool {
	return s.Start().Y <= y && y <= s.End().Y
}

// Contains returns true if p is within [Start, End).
func (s Selection) Contains(p Point) bool {
	return p.Compare(s.Start()) >= 0 && p.Compare(s.End()) < 0
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	dir := "→"
	if !s.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Head)
}

// Range is a normalized selection together with the text it covers.
type Range struct {
	Start Point
	End   Point
	Text  string
}

// IsEmpty returns true if the range selects nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}
