package buffer

import (
	"math"
	"strings"
)

// Buffer is an ordered sequence of lines. Every line but the last ends in
// its original terminator, and the sequence is never empty.
//
// Buffer is not safe for concurrent use; it is owned by a single editor.
type Buffer struct {
	lines []string
}

// New creates a buffer holding text.
func New(text string) *Buffer {
	return &Buffer{lines: SplitLines(text)}
}

// SetText replaces the whole document.
func (b *Buffer) SetText(text string) {
	b.lines = SplitLines(text)
}

// Text returns the document exactly as loaded and edited.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "")
}

// Lines returns a copy of the lines, terminators included.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// ClampLine clamps y into [0, LineCount-1].
func (b *Buffer) ClampLine(y int) int {
	return max(0, min(y, len(b.lines)-1))
}

// Line returns line y, clamped into range. With strip the terminator is
// removed.
func (b *Buffer) Line(y int, strip bool) string {
	line := b.lines[b.ClampLine(y)]
	if strip {
		return StripTerminator(line)
	}
	return line
}

// LineLen returns the column count of line y without its terminator.
func (b *Buffer) LineLen(y int) int {
	return RuneLen(b.Line(y, true))
}

// Clamp moves p to the nearest valid position: Y into the line range and
// X into [0, LineLen(Y)].
func (b *Buffer) Clamp(p Point) Point {
	y := b.ClampLine(p.Y)
	return Point{X: max(0, min(p.X, b.LineLen(y))), Y: y}
}

// TextRange returns the text between start and end. Lines start.Y..end.Y
// are concatenated, the first trimmed before start.X and the last after
// end.X. A reversed range is swapped.
func (b *Buffer) TextRange(start, end Point) string {
	start, end = Order(start, end)
	start.Y, end.Y = b.ClampLine(start.Y), b.ClampLine(end.Y)

	var sb strings.Builder
	for y := start.Y; y <= end.Y; y++ {
		line := b.lines[y]
		from, to := 0, math.MaxInt
		if y == end.Y {
			to = end.X
		}
		if y == start.Y {
			from = start.X
		}
		sb.WriteString(RuneSlice(line, from, to))
	}
	return sb.String()
}

// Splice replaces the span [start, end] with text. The untouched prefix of
// line start.Y and suffix of line end.Y are joined onto the first and last
// lines of text. Positions should be clamped by the caller.
func (b *Buffer) Splice(text string, start, end Point) {
	start, end = Order(start, end)
	start.Y, end.Y = b.ClampLine(start.Y), b.ClampLine(end.Y)

	// The suffix keeps the terminator of line end.Y, so the pieces are
	// joined without splitting again.
	repl := SplitLines(text)
	repl[0] = RuneSlice(b.lines[start.Y], 0, start.X) + repl[0]
	repl[len(repl)-1] += RuneSlice(b.lines[end.Y], end.X, math.MaxInt)

	lines := make([]string, 0, len(b.lines)-(end.Y-start.Y+1)+len(repl))
	lines = append(lines, b.lines[:start.Y]...)
	lines = append(lines, repl...)
	lines = append(lines, b.lines[end.Y+1:]...)
	b.lines = lines
}

// MaxWidth returns the widest stripped line according to measure.
func (b *Buffer) MaxWidth(measure func(string) int) int {
	width := 0
	for _, line := range b.lines {
		width = max(width, measure(StripTerminator(line)))
	}
	return width
}
