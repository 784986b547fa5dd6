package app

import (
	"errors"
	"fmt"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/input/key"
	"github.com/dshills/tagedit/internal/input/mouse"
	"github.com/dshills/tagedit/internal/renderer/backend"
	"github.com/dshills/tagedit/internal/renderer/statusline"
)

// origin is where the editor is drawn. The status line takes the row
// under it.
var origin = buffer.Point{}

// eventLoop is the main application loop. It returns when the user quits,
// the backend closes or Shutdown is called.
func (app *Application) eventLoop() error {
	stop := make(chan struct{})
	defer close(stop)
	events := app.startInputPolling(stop)

	app.draw()

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}

			timer := StartTimer()
			err := app.handleBackendEvent(ev)
			app.metrics.RecordEvent(timer.Elapsed())

			if errors.Is(err, ErrQuit) || ev.Type == backend.EventClosed {
				app.logger.Info("exiting")
				return nil
			}
			if err != nil {
				return err
			}
			app.draw()
		}
	}
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel until stop is closed or the
// backend reports it is closed.
func (app *Application) startInputPolling(stop <-chan struct{}) <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			// PollEvent is blocking. The backend.Shutdown() call in Run()
			// unblocks it with an EventClosed.
			ev := app.backend.PollEvent()

			select {
			case events <- ev:
			case <-stop:
				return
			}
			if ev.Type == backend.EventClosed {
				return
			}
		}
	}()

	return events
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.layout(ev.Width, ev.Height)
	case backend.EventKey:
		return app.handleKeyEvent(ev.Key)
	case backend.EventMouse:
		app.handleMouseEvent(ev.Mouse)
	case backend.EventPaste:
		app.handlePasteEvent(ev.PasteStart)
	case backend.EventFunc:
		if ev.Func != nil {
			ev.Func()
		}
	}
	return nil
}

// layout sizes the editor to the screen, leaving the last row for the
// status line.
func (app *Application) layout(width, height int) {
	textHeight := max(0, height-1)

	app.backend.SetRegion(origin, width, textHeight)
	app.doc.Engine.Resize(width, textHeight)
	app.handler.SetOrigin(origin)
	app.status.Resize(width)
	app.logger.Debug("layout %dx%d", width, height)
}

// statusRow returns the screen row of the status line.
func (app *Application) statusRow() int {
	return origin.Y + app.doc.Engine.Size().Y
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev key.Event) error {
	if app.pasting {
		app.collectPaste(ev)
		return nil
	}

	if ev.Matches("C-q") {
		return ErrQuit
	}

	app.status.ClearMessage()
	if ev.Matches("C-s") {
		app.save()
		return nil
	}

	if !app.handler.HandleKey(ev) {
		app.logger.Debug("unbound key %s", ev)
	}
	return nil
}

// handleMouseEvent processes mouse input events. Presses on the status
// line are ignored.
func (app *Application) handleMouseEvent(ev mouse.Event) {
	if ev.Action == mouse.ActionPress && ev.Y >= app.statusRow() {
		return
	}
	app.handler.HandleMouse(ev)
}

// handlePasteEvent starts or finishes a bracketed paste. The pasted keys
// arrive between the two events and are inserted as one change.
func (app *Application) handlePasteEvent(start bool) {
	if start {
		app.pasting = true
		app.paste.Reset()
		return
	}

	app.pasting = false
	text := app.paste.String()
	app.paste.Reset()
	if text != "" {
		app.doc.Engine.ChangeSelection(text)
	}
}

// collectPaste appends the text of a pasted key.
func (app *Application) collectPaste(ev key.Event) {
	switch {
	case ev.IsChar():
		app.paste.WriteRune(ev.Rune)
	case ev.Key == key.KeyEnter:
		app.paste.WriteString("\n")
	case ev.Key == key.KeyTab:
		app.paste.WriteString("\t")
	}
}

// save writes the document and reports the result on the status line.
func (app *Application) save() {
	if err := app.doc.Save(); err != nil {
		app.reportError("save", err)
		return
	}
	app.status.SetMessage(fmt.Sprintf("wrote %s", app.doc.Name), statusline.MessageInfo)
	app.logger.Info("saved %s", app.doc.Path)
}

// reportError logs err and shows it on the status line.
func (app *Application) reportError(component string, err error) {
	app.logComponentError(component, err)
	app.status.SetMessage(err.Error(), statusline.MessageError)
}

// draw renders the document and status line and places the cursor.
func (app *Application) draw() {
	timer := StartTimer()
	eng := app.doc.Engine

	app.renderer.Render()

	c := eng.Cursor()
	app.status.SetModified(app.doc.IsModified())
	app.status.SetPosition(c.Y, c.X)
	app.status.SetTotalLines(eng.LineCount())
	app.backend.DrawLine(app.statusRow(), app.status.Render())

	if eng.InsertMode() {
		app.backend.SetCursorStyle(backend.CursorBar)
	} else {
		app.backend.SetCursorStyle(backend.CursorBlock)
	}
	p := eng.ScreenCursor(origin)
	app.backend.ShowCursor(p.X, p.Y)
	app.backend.Show()

	app.metrics.RecordFrame(timer.Elapsed())
}
