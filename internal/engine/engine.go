package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/engine/cursor"
	"github.com/dshills/tagedit/internal/engine/prop"
	"github.com/dshills/tagedit/internal/engine/word"
	"github.com/dshills/tagedit/internal/event"
	"github.com/dshills/tagedit/internal/renderer/layout"
	"github.com/dshills/tagedit/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a column/line position.
	Point = buffer.Point

	// Selection represents an anchor/head pair.
	Selection = cursor.Selection

	// Range is a normalized selection with its text.
	Range = cursor.Range
)

// Engine is the editing core: buffer, cursor, selection, insert mode and
// scroll, with change notification.
type Engine struct {
	id uuid.UUID

	// Core components
	buf   *buffer.Buffer
	bus   *event.Bus
	tabs  *layout.TabExpander
	view  *viewport.Viewport
	words word.Finder

	// State
	cursor     *prop.Value[Point]
	preferred  int
	anchor     *prop.Value[cursor.Mark]
	insertMode *prop.Value[bool]
	scroll     *prop.Value[Point]

	// Configuration
	tabWidth int
	width    int
	height   int

	// Initialization
	initContent string
	initInsert  bool
}

// New creates a new engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:         uuid.New(),
		tabWidth:   DefaultTabWidth,
		width:      DefaultWidth,
		height:     DefaultHeight,
		words:      word.Default,
		initInsert: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.bus == nil {
		e.bus = event.NewBus()
	}

	e.buf = buffer.New(e.initContent)
	e.tabs = layout.NewTabExpander(e.tabWidth)
	e.view = viewport.NewViewport(e.width, e.height)
	e.view.SetExtent(e.maxWidth(), e.buf.LineCount())

	e.cursor = prop.New(e.bus, event.TopicCursor, buffer.Origin()).WithNormalize(e.buf.Clamp)
	e.anchor = prop.New[cursor.Mark](nil, event.TopicSelection, cursor.NoMark()).WithNormalize(e.clampMark)
	e.insertMode = prop.New(e.bus, event.TopicInsertMode, e.initInsert)
	e.scroll = prop.New(e.bus, event.TopicScroll, e.view.Scroll())

	e.bus.Subscribe(event.TopicCursor, func(event.Event) {
		e.follow()
	})

	return e
}

// ID returns the engine's instance id, used to correlate log lines.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Bus returns the bus the engine publishes on.
func (e *Engine) Bus() *event.Bus {
	return e.bus
}

// Subscribe registers fn for changes on topic.
func (e *Engine) Subscribe(topic event.Topic, fn event.Handler) *event.Subscription {
	return e.bus.Subscribe(topic, fn)
}

// ============================================================================
// Text
// ============================================================================

// SetText replaces the whole document. The cursor and anchor are clamped
// into the new text.
func (e *Engine) SetText(text string) {
	e.buf.SetText(text)
	e.view.SetExtent(e.maxWidth(), e.buf.LineCount())

	if old := e.anchor.Get(); e.anchor.Renormalize() {
		head := e.Cursor()
		e.bus.Publish(event.TopicSelection, cursor.FromMark(old, head), cursor.FromMark(e.anchor.Get(), head))
	}
	e.setCursor(e.Cursor(), true)
	e.follow()
	e.textChanged()
}

// Text returns the document, terminators included.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Lines returns a copy of the document lines, terminators included.
func (e *Engine) Lines() []string {
	return e.buf.Lines()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// Line returns line y (clamped), optionally without its terminator.
func (e *Engine) Line(y int, strip bool) string {
	return e.buf.Line(y, strip)
}

// TextRange returns the text between two positions.
func (e *Engine) TextRange(start, end Point) string {
	return e.buf.TextRange(e.buf.Clamp(start), e.buf.Clamp(end))
}

// Change replaces the text between start and end with text. The selection
// is cleared and the cursor ends up after the inserted text.
func (e *Engine) Change(text string, start, end Point) {
	start, end = buffer.Order(e.buf.Clamp(start), e.buf.Clamp(end))

	e.buf.Splice(text, start, end)
	e.view.SetExtent(e.maxWidth(), e.buf.LineCount())

	e.CollapseTo(start)
	e.MoveCursorHorizontal(advance(text), false)
	e.follow()
	e.textChanged()
}

// ChangeSelection replaces the current selection with text. Without a
// selection it inserts at the cursor.
func (e *Engine) ChangeSelection(text string) {
	r := e.Selection()
	e.Change(text, r.Start, r.End)
}

// Delete removes the current selection.
func (e *Engine) Delete() {
	e.ChangeSelection("")
}

// DeleteRange removes the text between start and end.
func (e *Engine) DeleteRange(start, end Point) {
	e.Change("", start, end)
}

// DeleteBackward deletes the selection, or the character (or word) before
// the cursor when nothing is selected.
func (e *Engine) DeleteBackward(word bool) {
	e.deleteDirection(-1, word)
}

// DeleteForward deletes the selection, or the character (or word) after the
// cursor when nothing is selected.
func (e *Engine) DeleteForward(word bool) {
	e.deleteDirection(1, word)
}

func (e *Engine) deleteDirection(dir int, word bool) {
	if !e.HasSelection() {
		e.StartSelection(e.Cursor())
		e.MoveCursorHorizontal(dir, word)
	}
	e.Delete()
}

// Type inserts ch at the cursor. It overwrites the character under the
// cursor only when insert mode is off, nothing is selected and ch is not a
// line break. Overwriting at the end of a line inserts.
func (e *Engine) Type(ch string, lineBreak bool) {
	c := e.Cursor()
	end := c
	if e.overwrites(lineBreak) {
		end.X++
	}
	e.Change(ch, c, end)
}

func (e *Engine) overwrites(lineBreak bool) bool {
	return !e.InsertMode() && !e.HasSelection() && !lineBreak
}

// advance is the number of cursor steps needed to pass over text. A CRLF
// pair is a single terminator and costs one step.
func advance(text string) int {
	return utf8.RuneCountInString(text) - strings.Count(text, "\r\n")
}

func (e *Engine) textChanged() {
	e.bus.Publish(event.TopicLines, nil, e.buf.Lines())
	e.bus.Publish(event.TopicText, nil, e.buf.Text())
}

// ============================================================================
// Insert mode
// ============================================================================

// InsertMode reports whether typing inserts (true) or overwrites (false).
func (e *Engine) InsertMode() bool {
	return e.insertMode.Get()
}

// SetInsertMode sets insert mode.
func (e *Engine) SetInsertMode(insert bool) {
	e.insertMode.Set(insert)
}

// ToggleInsertMode flips between insert and overwrite.
func (e *Engine) ToggleInsertMode() {
	e.insertMode.Set(!e.insertMode.Get())
}
