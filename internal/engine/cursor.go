package engine

import (
	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/engine/cursor"
	"github.com/dshills/tagedit/internal/event"
)

// ============================================================================
// Cursor
// ============================================================================

// Cursor returns the cursor position.
func (e *Engine) Cursor() Point {
	return e.cursor.Get()
}

// CursorState returns the cursor together with its preferred visible column.
func (e *Engine) CursorState() cursor.Cursor {
	return cursor.NewCursor(e.cursor.Get(), e.preferred)
}

// SetCursor moves the cursor to p (clamped) and makes its visible column
// the preferred column for vertical motion.
func (e *Engine) SetCursor(p Point) {
	e.setCursor(p, true)
}

// SetCursorKeepColumn moves the cursor to p (clamped) without touching the
// preferred column.
func (e *Engine) SetCursorKeepColumn(p Point) {
	e.setCursor(p, false)
}

func (e *Engine) setCursor(p Point, updatePreferred bool) {
	p = e.buf.Clamp(p)
	if updatePreferred {
		e.preferred = e.VisiblePos(p).X
	}

	old := e.cursor.Get()
	if p == old {
		return
	}
	mark := e.anchor.Get()
	e.cursor.Set(p)
	if mark.Active {
		e.bus.Publish(event.TopicSelection, cursor.FromMark(mark, old), cursor.FromMark(mark, p))
	}
}

// MoveCursorHorizontal moves the cursor count characters (negative moves
// left). Running off either end of a line continues on the neighbouring line,
// crossing the terminator for one step. Motion stops at the document bounds.
//
// In word mode the sign of count selects the direction and each of |count|
// steps moves to the previous word start or the next word end on the
// current line, at least one character.
func (e *Engine) MoveCursorHorizontal(count int, wordMode bool) {
	if wordMode {
		dir := sign(count)
		for i, n := 0, abs(count); i < n; i++ {
			c := e.Cursor()
			line := e.buf.Line(c.Y, true)

			var delta int
			if dir < 0 {
				target := 0
				if m, ok := e.words.Prev(line, c.X); ok {
					target = m.Index
				}
				delta = c.X - target
			} else {
				target := buffer.RuneLen(line)
				if m, ok := e.words.Next(line, c.X); ok {
					target = m.End()
				}
				delta = target - c.X
			}
			e.MoveCursorHorizontal(dir*max(1, delta), false)
		}
		return
	}

	c := e.Cursor()
	last := e.buf.LineCount() - 1
	for {
		if -count > c.X {
			// Up a line
			count += c.X + 1
			if c.Y == 0 {
				c.X = 0
				break
			}
			c.Y--
			c.X = e.buf.LineLen(c.Y)
			continue
		}

		rest := e.buf.LineLen(c.Y) - c.X
		if count > rest {
			// Down a line
			count -= rest + 1
			if c.Y == last {
				c.X = e.buf.LineLen(c.Y)
				break
			}
			c.X = 0
			c.Y++
			continue
		}

		// Same line
		c.X += count
		break
	}
	e.SetCursor(c)
}

// MoveCursorVertical moves the cursor count lines (negative moves up),
// landing on the real column closest to the preferred visible column.
//
// In paragraph mode each of |count| steps moves to the next blank line in
// that direction, or to the document bounds. Moving above the first line
// lands on the first line at the preferred column; moving below the last
// goes to its end.
func (e *Engine) MoveCursorVertical(count int, paragraphMode bool) {
	y := e.Cursor().Y
	last := e.buf.LineCount() - 1

	if paragraphMode {
		dir := sign(count)
		for i, n := 0, abs(count); i < n; i++ {
			for {
				y += dir
				if y < 0 || y >= last {
					break
				}
				if buffer.IsBlank(e.buf.Line(y, true)) {
					break
				}
			}
		}
	} else {
		y += count
	}

	switch {
	case y < 0:
		e.SetCursorKeepColumn(e.RealPos(Point{X: e.preferred, Y: 0}))
	case y > last:
		e.SetCursorKeepColumn(Point{X: e.buf.LineLen(last), Y: last})
	default:
		e.SetCursorKeepColumn(e.RealPos(Point{X: e.preferred, Y: y}))
	}
}

// ============================================================================
// Selection
// ============================================================================

// Anchor returns the selection anchor and whether a selection is active.
func (e *Engine) Anchor() (Point, bool) {
	return e.anchor.Get().Get()
}

// StartSelection sets the anchor at p (clamped).
func (e *Engine) StartSelection(p Point) {
	e.setAnchor(cursor.MarkAt(p))
}

// ClearSelection removes the anchor.
func (e *Engine) ClearSelection() {
	e.setAnchor(cursor.NoMark())
}

func (e *Engine) setAnchor(m cursor.Mark) {
	head := e.Cursor()
	old := e.anchor.Get()
	if e.anchor.Set(m) {
		e.bus.Publish(event.TopicSelection, cursor.FromMark(old, head), cursor.FromMark(e.anchor.Get(), head))
	}
}

func (e *Engine) clampMark(m cursor.Mark) cursor.Mark {
	if !m.Active {
		return cursor.NoMark()
	}
	return cursor.MarkAt(e.buf.Clamp(m.Pos))
}

// Selection returns the normalized selection and its text. Without an
// anchor both bounds are the cursor.
func (e *Engine) Selection() Range {
	head := e.Cursor()
	sel := cursor.FromMark(e.anchor.Get(), head)
	start, end := sel.Start(), sel.End()
	return Range{Start: start, End: end, Text: e.buf.TextRange(start, end)}
}

// HasSelection reports whether the selection covers any text.
func (e *Engine) HasSelection() bool {
	return e.Selection().Text != ""
}

// SelectTo anchors the selection at the cursor and moves the cursor to p.
func (e *Engine) SelectTo(p Point) {
	e.Select(e.Cursor(), p)
}

// CollapseTo clears the selection and moves the cursor to p.
func (e *Engine) CollapseTo(p Point) {
	e.ClearSelection()
	e.SetCursor(p)
}

// Select anchors the selection at start and moves the cursor to end.
func (e *Engine) Select(start, end Point) {
	e.StartSelection(start)
	e.SetCursor(end)
}

// SelectAll selects the whole document.
func (e *Engine) SelectAll() {
	e.Select(buffer.Origin(), buffer.End())
}

// ============================================================================
// Coordinates
// ============================================================================

// VisiblePos converts a real position to its visible (tab-expanded) column.
func (e *Engine) VisiblePos(p Point) Point {
	return Point{X: e.tabs.VisibleColumn(e.buf.Line(p.Y, true), p.X), Y: p.Y}
}

// RealPos converts a visible column back to a real one. A column inside a
// tab's expansion maps to the tab.
func (e *Engine) RealPos(p Point) Point {
	return Point{X: e.tabs.RealColumn(e.buf.Line(p.Y, true), p.X), Y: p.Y}
}

// TabWidth returns the number of cells a tab occupies.
func (e *Engine) TabWidth() int {
	return e.tabs.TabWidth()
}

// SetTabWidth changes the tab width. Lines are republished so they can be
// redrawn.
func (e *Engine) SetTabWidth(width int) {
	if width < 1 || width == e.tabs.TabWidth() {
		return
	}
	e.tabs.SetTabWidth(width)
	e.preferred = e.VisiblePos(e.Cursor()).X
	e.view.SetExtent(e.maxWidth(), e.buf.LineCount())
	e.follow()
	e.bus.Publish(event.TopicLines, nil, e.buf.Lines())
}

// ExpandTabs returns line with every tab replaced by spaces.
func (e *Engine) ExpandTabs(line string) string {
	return e.tabs.ExpandTabs(line)
}

func (e *Engine) maxWidth() int {
	return e.buf.MaxWidth(e.tabs.ExpandedWidth)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
