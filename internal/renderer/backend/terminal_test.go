package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/input/key"
	"github.com/dshills/tagedit/internal/input/mouse"
)

func newSimTerminal(t *testing.T, width, height int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(term.Shutdown)
	return term, screen
}

func cellAt(screen tcell.Screen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return r, style
}

func TestTerminalDrawMarkup(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 2)

	term.SetContent([]string{"ab{red-fg}c{/}{open}x{close}"})

	want := "abc{x}    "
	for x, r := range want {
		got, _ := cellAt(screen, x, 0)
		if got != r {
			t.Errorf("cell %d: expected %q, got %q", x, r, got)
		}
	}

	_, style := cellAt(screen, 2, 0)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorRed {
		t.Errorf("expected red foreground, got %v", fg)
	}
	_, style = cellAt(screen, 3, 0)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorDefault {
		t.Errorf("expected style reset after {/}, got %v", fg)
	}
}

func TestTerminalNestedStyles(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 1)

	term.SetContent([]string{"{blue-bg}a{bold}b{/bold}c"})

	_, style := cellAt(screen, 1, 0)
	_, bg, attrs := style.Decompose()
	if bg != tcell.ColorBlue || attrs&tcell.AttrBold == 0 {
		t.Errorf("expected bold on blue, got bg %v attrs %v", bg, attrs)
	}

	_, style = cellAt(screen, 2, 0)
	_, bg, attrs = style.Decompose()
	if bg != tcell.ColorBlue || attrs&tcell.AttrBold != 0 {
		t.Errorf("expected plain blue after closing bold, got bg %v attrs %v", bg, attrs)
	}
}

func TestTerminalRegion(t *testing.T) {
	term, screen := newSimTerminal(t, 8, 4)

	term.DrawLine(3, "status")
	term.SetRegion(buffer.Pt(2, 1), 3, 2)
	term.SetContent([]string{"abcdef"})

	if r, _ := cellAt(screen, 2, 1); r != 'a' {
		t.Errorf("expected 'a' at region origin, got %q", r)
	}
	if r, _ := cellAt(screen, 5, 1); r == 'd' {
		t.Error("text should be clipped to the region width")
	}
	if r, _ := cellAt(screen, 0, 3); r != 's' {
		t.Errorf("status line should be untouched, got %q", r)
	}
}

func TestTerminalWideCharacters(t *testing.T) {
	term, screen := newSimTerminal(t, 6, 1)

	term.SetContent([]string{"界x"})
	if r, _ := cellAt(screen, 0, 0); r != '界' {
		t.Errorf("expected wide rune, got %q", r)
	}
	if r, _ := cellAt(screen, 2, 0); r != 'x' {
		t.Errorf("expected 'x' after a double-width rune, got %q", r)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want tcell.Color
		ok   bool
	}{
		{"red", tcell.ColorRed, true},
		{"Blue", tcell.ColorBlue, true},
		{"#ff8800", tcell.NewRGBColor(0xff, 0x88, 0x00), true},
		{"#f80", tcell.NewRGBColor(0xff, 0x88, 0x00), true},
		{"default", tcell.ColorDefault, true},
		{"nosuchcolor", tcell.ColorDefault, false},
		{"#zzz", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if ok != tt.ok {
			t.Errorf("ParseColor(%q): expected ok=%v", tt.name, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "x"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "Enter"},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "S-Left"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), "C-a"},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "Backspace"},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "PageDown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("expected key to convert")
			}
			if !got.Equals(key.MustParse(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, ok := convertKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("unbound function keys should not convert")
	}
}

func TestConvertEventSequence(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"))

	a := term.convertEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	b := term.convertEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if a.Key.Seq == 0 || a.Key.Seq == b.Key.Seq {
		t.Errorf("expected distinct sequence numbers, got %d and %d", a.Key.Seq, b.Key.Seq)
	}
}

func TestConvertMouse(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"))

	steps := []struct {
		ev   *tcell.EventMouse
		want mouse.Action
	}{
		{tcell.NewEventMouse(1, 2, tcell.ButtonPrimary, tcell.ModNone), mouse.ActionPress},
		{tcell.NewEventMouse(3, 2, tcell.ButtonPrimary, tcell.ModNone), mouse.ActionDrag},
		{tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone), mouse.ActionRelease},
		{tcell.NewEventMouse(3, 2, tcell.WheelDown, tcell.ModShift), mouse.ActionWheelDown},
	}

	for i, step := range steps {
		got := term.convertEvent(step.ev)
		if got.Type != EventMouse {
			t.Fatalf("step %d: expected mouse event, got %+v", i, got)
		}
		if got.Mouse.Action != step.want {
			t.Errorf("step %d: expected %v, got %v", i, step.want, got.Mouse.Action)
		}
	}

	last := term.convertEvent(tcell.NewEventMouse(4, 5, tcell.WheelUp, tcell.ModShift))
	if !last.Mouse.Modifiers.HasShift() || last.Mouse.X != 4 || last.Mouse.Y != 5 {
		t.Errorf("unexpected wheel event %+v", last.Mouse)
	}
}

func TestConvertOtherEvents(t *testing.T) {
	term := NewTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"))

	resize := term.convertEvent(tcell.NewEventResize(30, 10))
	if resize.Type != EventResize || resize.Width != 30 || resize.Height != 10 {
		t.Errorf("unexpected resize event %+v", resize)
	}

	paste := term.convertEvent(tcell.NewEventPaste(true))
	if paste.Type != EventPaste || !paste.PasteStart {
		t.Errorf("unexpected paste event %+v", paste)
	}

	called := false
	fn := term.convertEvent(tcell.NewEventInterrupt(func() { called = true }))
	if fn.Type != EventFunc {
		t.Fatalf("expected func event, got %+v", fn)
	}
	fn.Func()
	if !called {
		t.Error("expected posted func")
	}

	if other := term.convertEvent(tcell.NewEventInterrupt("data")); other.Type != EventNone {
		t.Errorf("expected foreign interrupt ignored, got %+v", other)
	}
}

func TestTerminalPost(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 2)

	done := false
	term.Post(func() { done = true })

	for i := 0; i < 10; i++ {
		ev := term.PollEvent()
		if ev.Type == EventFunc {
			ev.Func()
			break
		}
	}
	if !done {
		t.Error("expected posted func to be polled")
	}
}
