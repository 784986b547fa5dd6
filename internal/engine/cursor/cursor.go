package cursor

import (
	"fmt"

	"github.com/dshills/tagedit/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Cursor represents the insertion point in the buffer.
// PreferredColumn is the visible column vertical motion aims for.
type Cursor struct {
	Pos             Point
	PreferredColumn int
}

// NewCursor creates a cursor at p whose preferred column is visible.
func NewCursor(p Point, visible int) Cursor {
	return Cursor{Pos: p, PreferredColumn: visible}
}

// MoveTo returns a cursor at p that keeps the preferred column.
func (c Cursor) MoveTo(p Point) Cursor {
	return Cursor{Pos: p, PreferredColumn: c.PreferredColumn}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor%s@%d", c.Pos, c.PreferredColumn)
}

// Mark is the optional fixed end of a selection.
type Mark struct {
	Pos    Point
	Active bool
}

// NoMark returns an inactive mark.
func NoMark() Mark {
	return Mark{}
}

// MarkAt returns an active mark at p.
func MarkAt(p Point) Mark {
	return Mark{Pos: p, Active: true}
}

// Get returns the mark position and whether it is active.
func (m Mark) Get() (Point, bool) {
	return m.Pos, m.Active
}

// String returns a string representation of the mark.
func (m Mark) String() string {
	if !m.Active {
		return "Mark(none)"
	}
	return fmt.Sprintf("Mark%s", m.Pos)
}
