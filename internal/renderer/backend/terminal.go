package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/input/key"
	"github.com/dshills/tagedit/internal/input/mouse"
	"github.com/dshills/tagedit/internal/renderer/markup"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex

	origin  buffer.Point
	regionW int
	regionH int
	sized   bool

	tracker *mouse.Tracker
	seq     uint64
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend drawing to screen, such
// as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		tracker: mouse.NewTracker(),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Enable mouse support by default
	t.screen.EnableMouse()

	// Enable bracketed paste
	t.screen.EnablePaste()

	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetRegion(origin buffer.Point, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.origin, t.regionW, t.regionH, t.sized = origin, width, height, true
}

func (t *Terminal) region() (buffer.Point, int, int) {
	if !t.sized {
		w, h := t.screen.Size()
		return buffer.Point{}, w, h
	}
	return t.origin, t.regionW, t.regionH
}

func (t *Terminal) SetContent(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	origin, width, height := t.region()
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		t.drawMarkup(origin.X, origin.Y+i, width, line)
	}
}

func (t *Terminal) DrawLine(y int, line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, _ := t.screen.Size()
	t.drawMarkup(0, y, width, line)
}

// drawMarkup draws a markup line into width cells starting at (x, y) and
// clears whatever the text does not cover.
func (t *Terminal) drawMarkup(x, y, width int, line string) {
	right := x + width
	styles := newStyleStack(tcell.StyleDefault)

	col := x
	for _, tok := range markup.Scan(line) {
		if tok.Tag && !tok.IsEscape() {
			if tok.Close {
				styles.pop(tok.Name)
			} else {
				styles.push(tok.Name)
			}
			continue
		}

		g := uniseg.NewGraphemes(tok.Literal())
		for g.Next() && col < right {
			runes := g.Runes()
			w := max(1, g.Width())
			if col+w > right {
				break
			}
			t.screen.SetContent(col, y, runes[0], runes[1:], styles.style)
			col += w
		}
	}
	for ; col < right; col++ {
		t.screen.SetContent(col, y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out := t.convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

func (t *Terminal) Post(fn func()) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(fn)) // best-effort; event queue may be full
}

// convertEvent converts tcell events to our Event type.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{}
		}
		t.seq++
		k.Seq = t.seq
		k.Timestamp = e.When()
		return Event{Type: EventKey, Key: k}

	case *tcell.EventMouse:
		x, y := e.Position()
		m := t.tracker.Translate(x, y, convertButtons(e.Buttons()), convertMod(e.Modifiers()), e.When())
		return Event{Type: EventMouse, Mouse: m}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventPaste:
		return Event{Type: EventPaste, PasteStart: e.Start()}

	case *tcell.EventInterrupt:
		if fn, ok := e.Data().(func()); ok {
			return Event{Type: EventFunc, Func: fn}
		}
	}
	return Event{}
}

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// convertKey converts a tcell key event. Control characters become the
// letter with Ctrl held.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		r := e.Rune()
		if r > 0 && r < ' ' {
			k = tcell.Key(r)
		} else {
			return key.NewRuneEvent(r, mods), true
		}
	}
	if special, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(special, mods), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// convertMod converts tcell modifier mask to our modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertButtons converts tcell button mask to a single button.
func convertButtons(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return mouse.ButtonLeft
	case b&tcell.ButtonMiddle != 0:
		return mouse.ButtonMiddle
	case b&tcell.ButtonSecondary != 0:
		return mouse.ButtonRight
	case b&tcell.WheelUp != 0:
		return mouse.ButtonWheelUp
	case b&tcell.WheelDown != 0:
		return mouse.ButtonWheelDown
	default:
		return mouse.ButtonNone
	}
}
