package engine

// Scroll returns the visible position of the top-left cell on screen.
func (e *Engine) Scroll() Point {
	return e.scroll.Get()
}

// SetScroll scrolls to p, clamped to the content.
func (e *Engine) SetScroll(p Point) {
	e.view.SetScroll(p)
	e.scroll.Set(e.view.Scroll())
}

// Size returns the viewport size in cells.
func (e *Engine) Size() Point {
	return e.view.Size()
}

// Resize changes the viewport size and scrolls the cursor back into view.
func (e *Engine) Resize(width, height int) {
	e.view.Resize(width, height)
	e.follow()
}

// ScreenCursor returns where the terminal cursor belongs for a widget whose
// top-left cell is at origin.
func (e *Engine) ScreenCursor(origin Point) Point {
	return origin.Add(e.view.ToScreen(e.VisiblePos(e.Cursor())))
}

// FromScreen returns the document position under the screen cell p for a
// widget whose top-left cell is at origin. The column is snapped to a real
// one; the line is not clamped.
func (e *Engine) FromScreen(origin, p Point) Point {
	return e.RealPos(e.view.FromScreen(p.Sub(origin)))
}

// follow scrolls by the least amount that keeps the cursor on screen.
func (e *Engine) follow() {
	e.view.Follow(e.VisiblePos(e.Cursor()))
	e.scroll.Set(e.view.Scroll())
}
