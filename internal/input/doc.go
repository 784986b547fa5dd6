// Package input translates host key and mouse events into editor
// operations.
//
// # Keys
//
//	Left/Right        move one character; Ctrl moves by word
//	Up/Down           move one line; Ctrl moves by paragraph
//	PageUp/PageDown   move PageLines lines
//	Home/End          start or end of the line
//	Backspace/Delete  delete the selection, or one character (Ctrl: word)
//	Shift+motion      extend the selection
//	Ctrl-A            select all
//	Ctrl-C, Ctrl-X    copy, cut
//	Ctrl-V            paste
//	Insert            toggle insert/overwrite
//	Enter, Tab, text  type
//
// A motion without Shift clears the selection. Left or Right with a
// selection whose anchor lies in the direction of travel jumps to the
// anchor instead of moving.
//
// # Mouse
//
// Press starts a selection at the pointer, dragging extends it and a
// release on the press position clears it. The wheel moves PageLines lines,
// extending the selection when Shift is held or a button is down.
package input
