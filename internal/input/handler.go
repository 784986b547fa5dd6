package input

import (
	"math"

	"github.com/dshills/tagedit/internal/clipboard"
	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/engine/cursor"
	"github.com/dshills/tagedit/internal/input/key"
	"github.com/dshills/tagedit/internal/input/mouse"
)

// Editor is the editing surface the handler drives.
type Editor interface {
	Cursor() buffer.Point
	SetCursor(p buffer.Point)
	MoveCursorHorizontal(count int, wordMode bool)
	MoveCursorVertical(count int, paragraphMode bool)

	Anchor() (buffer.Point, bool)
	StartSelection(p buffer.Point)
	ClearSelection()
	SelectAll()
	Selection() cursor.Range

	ChangeSelection(text string)
	Delete()
	DeleteBackward(word bool)
	DeleteForward(word bool)
	Type(ch string, lineBreak bool)
	ToggleInsertMode()

	FromScreen(origin, p buffer.Point) buffer.Point
}

// Config configures the input handler.
type Config struct {
	// PageLines is how far PageUp, PageDown and the wheel move.
	PageLines int

	// Origin is the screen position of the editor's top-left cell.
	Origin buffer.Point
}

// DefaultPageLines is the default page motion distance.
const DefaultPageLines = 10

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PageLines: DefaultPageLines,
	}
}

// Handler is the main entry point for input processing.
type Handler struct {
	config Config
	ed     Editor
	clip   clipboard.Clipboard

	// onError receives paste failures from key bindings.
	onError func(error)

	// lastEnter is the sequence number of the last Enter handled.
	lastEnter uint64

	// mouseDown is set between a press and its release.
	mouseDown bool
}

// NewHandler creates a handler driving ed. A nil clipboard uses an
// in-process one.
func NewHandler(ed Editor, clip clipboard.Clipboard, config Config) *Handler {
	if clip == nil {
		clip = clipboard.NewMemory()
	}
	if config.PageLines < 1 {
		config.PageLines = DefaultPageLines
	}
	return &Handler{
		config:  config,
		ed:      ed,
		clip:    clip,
		onError: func(error) {},
	}
}

// Config returns the current configuration.
func (h *Handler) Config() Config {
	return h.config
}

// SetPageLines changes the page motion distance.
func (h *Handler) SetPageLines(n int) {
	if n > 0 {
		h.config.PageLines = n
	}
}

// SetOrigin records where the editor is drawn on screen.
func (h *Handler) SetOrigin(p buffer.Point) {
	h.config.Origin = p
}

// SetErrorHandler sets the function that receives paste failures.
func (h *Handler) SetErrorHandler(fn func(error)) {
	if fn != nil {
		h.onError = fn
	}
}

// HandleKey applies a key event. It returns false for keys it does not
// bind.
func (h *Handler) HandleKey(ev key.Event) bool {
	if dir := ev.Key.Direction(); dir != 0 {
		h.handleMotion(ev, dir)
		return true
	}

	switch {
	case ev.Matches("C-a"):
		h.ed.SelectAll()
	case ev.Matches("C-c"):
		h.Copy()
	case ev.Matches("C-x"):
		h.Cut()
	case ev.Matches("C-v"):
		h.Paste(h.onError)
	case ev.Key == key.KeyInsert:
		h.ed.ToggleInsertMode()
	case ev.Key == key.KeyEnter:
		if ev.Seq != 0 && ev.Seq == h.lastEnter {
			// Same key press delivered twice.
			return true
		}
		h.lastEnter = ev.Seq
		h.ed.Type("\n", true)
	case ev.Key == key.KeyTab && ev.Modifiers == key.ModNone:
		h.ed.Type("\t", false)
	case ev.IsChar():
		h.ed.Type(string(ev.Rune), false)
	default:
		return false
	}
	return true
}

func (h *Handler) handleMotion(ev key.Event, dir int) {
	shift, ctrl := ev.Modifiers.HasShift(), ev.Modifiers.HasCtrl()

	if ev.Key.IsDeletion() {
		if dir < 0 {
			h.ed.DeleteBackward(ctrl)
		} else {
			h.ed.DeleteForward(ctrl)
		}
		return
	}

	anchor, selecting := h.ed.Anchor()
	if !shift {
		h.ed.ClearSelection()
	} else if !selecting {
		h.ed.StartSelection(h.ed.Cursor())
	}

	switch ev.Key {
	case key.KeyLeft, key.KeyRight:
		if !shift && selecting && anchor.Compare(h.ed.Cursor()) == dir {
			h.ed.SetCursor(anchor)
		} else {
			h.ed.MoveCursorHorizontal(dir, ctrl)
		}
	case key.KeyUp, key.KeyDown:
		h.ed.MoveCursorVertical(dir, ctrl)
	case key.KeyPageUp, key.KeyPageDown:
		h.ed.MoveCursorVertical(dir*h.config.PageLines, false)
	case key.KeyHome:
		h.ed.SetCursor(buffer.Point{X: 0, Y: h.ed.Cursor().Y})
	case key.KeyEnd:
		h.ed.SetCursor(buffer.Point{X: math.MaxInt, Y: h.ed.Cursor().Y})
	}
}

// Copy puts the selected text on the clipboard.
func (h *Handler) Copy() {
	if r := h.ed.Selection(); r.Text != "" {
		h.clip.Copy(r.Text)
	}
}

// Cut copies the selection and deletes it.
func (h *Handler) Cut() {
	h.Copy()
	h.ed.Delete()
}

// Paste replaces the selection with the clipboard text once it arrives.
// The selection is read when the text arrives, not when Paste is called. A
// failed read changes nothing; done receives the result either way.
func (h *Handler) Paste(done func(error)) {
	h.clip.Paste(func(text string, err error) {
		if err == nil {
			h.ed.ChangeSelection(text)
		}
		if done != nil {
			done(err)
		}
	})
}

// HandleMouse applies a mouse event given in screen cells. It returns
// false for events it ignores.
func (h *Handler) HandleMouse(ev mouse.Event) bool {
	if ev.Action.IsWheel() {
		_, selecting := h.ed.Anchor()
		if !ev.Modifiers.HasShift() && !h.mouseDown {
			h.ed.ClearSelection()
		} else if !selecting {
			h.ed.StartSelection(h.ed.Cursor())
		}
		h.ed.MoveCursorVertical(ev.Action.WheelDirection()*h.config.PageLines, false)
		return true
	}

	pos := h.ed.FromScreen(h.config.Origin, ev.Pos())

	switch ev.Action {
	case mouse.ActionPress:
		if ev.Button != mouse.ButtonLeft {
			return false
		}
		h.mouseDown = true
		h.ed.StartSelection(pos)
		h.ed.SetCursor(pos)
	case mouse.ActionDrag, mouse.ActionMove:
		if !h.mouseDown {
			return false
		}
		h.ed.SetCursor(pos)
	case mouse.ActionRelease:
		if !h.mouseDown {
			return false
		}
		h.mouseDown = false
		h.ed.SetCursor(pos)
		if anchor, ok := h.ed.Anchor(); ok && anchor == h.ed.Cursor() {
			h.ed.ClearSelection()
		}
	default:
		return false
	}
	return true
}
