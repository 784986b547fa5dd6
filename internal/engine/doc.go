// Package engine provides the editing core of tagedit.
//
// The engine owns a line buffer, a single cursor with an optional selection
// anchor, an insert/overwrite flag and the viewport scroll offset. Every
// mutator clamps its coordinates instead of failing, so callers can ask for
// "as far as possible" without checking bounds first.
//
// # Coordinates
//
// Real positions count runes within a line. Visible positions count screen
// cells after tab expansion; the scroll offset and the preferred column used
// by vertical motion are visible. VisiblePos and RealPos convert between the
// two.
//
// # Notifications
//
// State changes are published on an event.Bus (see package event). The
// engine itself subscribes first to the cursor topic so the viewport follows
// the cursor before any other observer runs.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("hello\nworld"), engine.WithSize(80, 24))
//	e.Subscribe(event.TopicText, func(ev event.Event) {
//	    save(ev.New.(string))
//	})
//	e.SetCursor(buffer.Pt(5, 0))
//	e.Type("!", false)
//
// # Thread Safety
//
// An Engine is owned by one goroutine, usually the UI event loop. Work done
// elsewhere (such as a clipboard read) must be posted back to that goroutine.
package engine
