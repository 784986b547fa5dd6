// Package statusline builds the one-row status bar shown under the editor.
//
// The bar is produced as a markup line, so it is drawn by the same surface
// code as the document and can be styled with the same tags.
package statusline

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/tagedit/internal/renderer/markup"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// Default style tags.
const (
	DefaultBarStyle     = "{white-fg,gray-bg}"
	DefaultInsertStyle  = "{black-fg,green-bg,bold}"
	DefaultReplaceStyle = "{white-fg,red-bg,bold}"
)

var messageStyles = map[MessageType]string{
	MessageInfo:    "",
	MessageWarning: "{yellow-fg}",
	MessageError:   "{red-fg,bold}",
}

// StatusLine renders the bottom status line.
type StatusLine struct {
	insert     bool
	filename   string
	modified   bool
	line       int // 1-indexed for display
	col        int // 1-indexed for display
	totalLines int

	message     string
	messageType MessageType

	barStyle    string
	insertStyle string
	replStyle   string

	width int
}

// New creates a status line for a screen width cells wide.
func New(width int) *StatusLine {
	return &StatusLine{
		insert:      true,
		barStyle:    DefaultBarStyle,
		insertStyle: DefaultInsertStyle,
		replStyle:   DefaultReplaceStyle,
		width:       max(0, width),
	}
}

// SetInsertMode selects the INS or OVR indicator.
func (s *StatusLine) SetInsertMode(insert bool) {
	s.insert = insert
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position from zero-based coordinates.
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line + 1
	s.col = col + 1
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a status message until the next ClearMessage.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(0, width)
}

// Render returns the status line as markup.
func (s *StatusLine) Render() string {
	if s.message != "" {
		return s.renderMessage()
	}
	return s.renderStatusBar()
}

func (s *StatusLine) renderStatusBar() string {
	mode, modeStyle := " INS ", s.insertStyle
	if !s.insert {
		mode, modeStyle = " OVR ", s.replStyle
	}

	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if s.modified {
		name += " [+]"
	}

	pos := s.formatPosition()
	room := s.width - uniseg.StringWidth(mode) - 1 - uniseg.StringWidth(pos) - 1
	name = truncate(name, max(0, room-1))
	gap := max(1, room-uniseg.StringWidth(name))

	var sb strings.Builder
	sb.WriteString(modeStyle)
	sb.WriteString(mode)
	sb.WriteString(markup.Reset)
	sb.WriteString(s.barStyle)
	sb.WriteString(" ")
	sb.WriteString(markup.Escape(name))
	sb.WriteString(strings.Repeat(" ", gap))
	sb.WriteString(pos)
	sb.WriteString(" ")
	sb.WriteString(markup.Reset)
	return sb.String()
}

func (s *StatusLine) renderMessage() string {
	msg := markup.Escape(truncate(s.message, s.width))
	style := messageStyles[s.messageType]
	if style == "" {
		return msg
	}
	return style + msg + markup.Reset
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	line, col := max(1, s.line), max(1, s.col)
	result := fmt.Sprintf("Ln %d, Col %d", line, col)

	if s.totalLines > 0 {
		switch {
		case line == 1:
			result += " | Top"
		case line >= s.totalLines:
			result += " | Bot"
		default:
			result += fmt.Sprintf(" | %d%%", line*100/s.totalLines)
		}
	}
	return result
}

// truncate cuts s to at most width cells, marking the cut with "…".
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	sb.WriteString("…")
	return sb.String()
}
