// Package viewport provides viewport management for the renderer.
//
// Positions here are in visible cells: X is a tab-expanded column and Y a
// line index. The scroll offset is the top-left visible cell.
package viewport

import "github.com/dshills/tagedit/internal/engine/buffer"

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Size in screen cells
	width  int
	height int

	// Position in buffer (first visible cell)
	scroll Point

	// Content extent
	maxWidth  int
	lineCount int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:     max(1, width),
		height:    max(1, height),
		lineCount: 1,
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// Size returns the viewport size as a point.
func (v *Viewport) Size() Point {
	return Point{X: v.width, Y: v.height}
}

// Resize updates the viewport size and reclamps the scroll offset.
// Width and height are clamped to a minimum of 1 to prevent underflow.
// Returns true if the scroll offset moved.
func (v *Viewport) Resize(width, height int) bool {
	v.width = max(1, width)
	v.height = max(1, height)
	return v.SetScroll(v.scroll)
}

// SetExtent records the widest line (in visible cells) and the line count.
// Returns true if the scroll offset had to move to stay in range.
func (v *Viewport) SetExtent(maxWidth, lineCount int) bool {
	v.maxWidth = max(0, maxWidth)
	v.lineCount = max(1, lineCount)
	return v.SetScroll(v.scroll)
}

// Scroll returns the current scroll offset.
func (v *Viewport) Scroll() Point {
	return v.scroll
}

// MaxScroll returns the largest scroll offset. The extent includes the
// cell just past the widest line so a cursor at end of line stays visible.
func (v *Viewport) MaxScroll() Point {
	return Point{
		X: max(0, v.maxWidth+1-v.width),
		Y: max(0, v.lineCount-v.height),
	}
}

// Clamp returns p limited to [0, MaxScroll].
func (v *Viewport) Clamp(p Point) Point {
	return p.Min(v.MaxScroll()).Max(buffer.Origin())
}

// SetScroll sets the scroll offset, clamped into range.
// Returns true if the offset changed.
func (v *Viewport) SetScroll(p Point) bool {
	p = v.Clamp(p)
	if p == v.scroll {
		return false
	}
	v.scroll = p
	return true
}

// Follow scrolls by the minimal amount that brings cursor (a visible
// position) into view. Returns true if the offset changed.
func (v *Viewport) Follow(cursor Point) bool {
	if v.IsVisible(cursor) {
		return false
	}
	s := v.scroll.Min(cursor)
	s = s.Max(cursor.Sub(v.Size()).Add(Point{X: 1, Y: 1}))
	return v.SetScroll(s)
}

// IsVisible returns true if the visible position p is on screen.
func (v *Viewport) IsVisible(p Point) bool {
	return p.X >= v.scroll.X && p.X < v.scroll.X+v.width &&
		p.Y >= v.scroll.Y && p.Y < v.scroll.Y+v.height
}

// ToScreen converts a visible position to a position relative to the
// viewport's top-left corner.
func (v *Viewport) ToScreen(p Point) Point {
	return p.Sub(v.scroll)
}

// FromScreen converts a viewport-relative position to a visible position.
func (v *Viewport) FromScreen(p Point) Point {
	return p.Add(v.scroll)
}
