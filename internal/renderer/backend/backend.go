// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"sync"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/input/key"
	"github.com/dshills/tagedit/internal/input/mouse"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
	CursorHidden
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFunc
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Mouse is set for EventMouse.
	Mouse mouse.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// PasteStart is set for EventPaste: true when a bracketed paste begins,
	// false when it ends. Keys in between are the pasted text.
	PasteStart bool

	// Func is set for EventFunc and must be run on the event loop.
	Func func()
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetRegion sets where SetContent draws.
	SetRegion(origin buffer.Point, width, height int)

	// SetContent draws one markup line per row of the region. Rows past
	// the end of lines are cleared.
	SetContent(lines []string)

	// DrawLine draws a markup line across row y of the whole screen.
	DrawLine(y int, line string)

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits for and returns the next event. After Shutdown it
	// returns an EventClosed event.
	PollEvent() Event

	// Post queues fn to be returned by PollEvent as an EventFunc. It is
	// safe to call from any goroutine.
	Post(fn func())
}

// NullBackend is a headless backend that records what is drawn.
type NullBackend struct {
	mu sync.Mutex

	width, height int
	origin        buffer.Point
	regionW       int
	regionH       int

	rows          []string
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shows         int

	events chan Event
	closed chan struct{}
	once   sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:   width,
		height:  height,
		regionW: width,
		regionH: height,
		rows:    make([]string, height),
		events:  make(chan Event, 100),
		closed:  make(chan struct{}),
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.once.Do(func() { close(b.closed) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) SetRegion(origin buffer.Point, width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.origin, b.regionW, b.regionH = origin, width, height
}

func (b *NullBackend) SetContent(lines []string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, n := 0, b.regionH; i < n; i++ {
		y := b.origin.Y + i
		if y < 0 || y >= b.height {
			continue
		}
		b.rows[y] = ""
		if i < len(lines) {
			b.rows[y] = lines[i]
		}
	}
}

func (b *NullBackend) DrawLine(y int, line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y >= 0 && y < b.height {
		b.rows[y] = line
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventClosed}
	}
}

func (b *NullBackend) Post(fn func()) {
	b.PostEvent(Event{Type: EventFunc, Func: fn})
}

// PostEvent queues a synthetic event. Events are dropped if the queue is
// full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// Row returns the markup last drawn on row y.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return ""
	}
	return b.rows[y]
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cursorStyle
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}

// Resize simulates a terminal resize and queues the resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	rows := make([]string, height)
	copy(rows, b.rows)
	b.rows = rows
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
