package renderer

import (
	"strings"

	"github.com/dshills/tagedit/internal/engine/buffer"
	"github.com/dshills/tagedit/internal/engine/cursor"
	"github.com/dshills/tagedit/internal/event"
	"github.com/dshills/tagedit/internal/renderer/markup"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Document provides the editor state the renderer draws.
// This interface abstracts the engine for rendering.
type Document interface {
	// LineCount returns the total number of lines.
	LineCount() int

	// Line returns line y, optionally without its terminator.
	Line(y int, strip bool) string

	// ExpandTabs replaces tabs with spaces.
	ExpandTabs(line string) string

	// VisiblePos converts a real position to a visible one.
	VisiblePos(p Point) Point

	// Scroll returns the visible position of the top-left cell.
	Scroll() Point

	// Size returns the viewport size in cells.
	Size() Point

	// Anchor returns the selection anchor and whether it is set.
	Anchor() (Point, bool)

	// Selection returns the normalized selection.
	Selection() cursor.Range

	// Subscribe registers fn for changes on topic.
	Subscribe(topic event.Topic, fn event.Handler) *event.Subscription
}

// Surface receives rendered frames.
type Surface interface {
	// SetContent replaces the surface content with one markup line per row.
	SetContent(lines []string)
}

// Options configures the renderer.
type Options struct {
	// SelectStyle is the tag opened at the start of the selection.
	SelectStyle string
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		SelectStyle: "{blue-bg}",
	}
}

// Frame is one rendered screen.
type Frame struct {
	// Lines holds one markup line per visible row.
	Lines []string
}

// String joins the frame lines with newlines.
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Renderer draws a Document onto a Surface.
type Renderer struct {
	doc     Document
	surface Surface
	opts    Options

	subs       []*event.Subscription
	frameCount uint64
	last       Frame
}

// New creates a renderer and subscribes it to the changes that require a
// redraw.
func New(doc Document, surface Surface, opts Options) *Renderer {
	if opts.SelectStyle == "" {
		opts.SelectStyle = DefaultOptions().SelectStyle
	}
	r := &Renderer{
		doc:     doc,
		surface: surface,
		opts:    opts,
	}

	redraw := func(event.Event) { r.Render() }
	for _, topic := range []event.Topic{event.TopicLines, event.TopicScroll, event.TopicSelection} {
		r.subs = append(r.subs, doc.Subscribe(topic, redraw))
	}
	return r
}

// Close stops automatic redraws.
func (r *Renderer) Close() {
	for _, sub := range r.subs {
		sub.Unsubscribe()
	}
	r.subs = nil
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetSelectStyle changes the selection style tag and redraws.
func (r *Renderer) SetSelectStyle(style string) {
	if style == "" || style == r.opts.SelectStyle {
		return
	}
	r.opts.SelectStyle = style
	r.Render()
}

// Render computes the frame and hands it to the surface.
func (r *Renderer) Render() Frame {
	f := r.Frame()
	if r.surface != nil {
		r.surface.SetContent(f.Lines)
	}
	r.last = f
	r.frameCount++
	return f
}

// Frame computes the current frame without drawing it.
func (r *Renderer) Frame() Frame {
	scroll := r.doc.Scroll()
	size := r.doc.Size()
	last := min(scroll.Y+size.Y, r.doc.LineCount())

	_, selecting := r.doc.Anchor()
	sel := r.doc.Selection()
	rows := cursor.Selection{Anchor: sel.Start, Head: sel.End}
	start := r.doc.VisiblePos(sel.Start)
	end := r.doc.VisiblePos(sel.End)

	lines := make([]string, 0, max(0, last-scroll.Y))
	for y := scroll.Y; y < last; y++ {
		line := r.row(y, scroll.X, size.X)
		if selecting && rows.CoversLine(y) {
			from, to := 0, size.X
			if y == sel.Start.Y {
				from = start.X - scroll.X
			}
			if y == sel.End.Y {
				to = end.X - scroll.X
			}
			from = max(0, min(from, size.X))
			to = max(0, min(to, size.X))
			line = markup.Highlight(line, from, to, r.opts.SelectStyle, markup.Reset)
		}
		lines = append(lines, line)
	}
	return Frame{Lines: lines}
}

// row returns the escaped, scrolled text of line y.
func (r *Renderer) row(y, left, width int) string {
	text := r.doc.ExpandTabs(r.doc.Line(y, true))
	if pad := left + width - buffer.RuneLen(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return markup.Escape(buffer.RuneSlice(text, left, left+width))
}

// LastFrame returns the most recently rendered frame.
func (r *Renderer) LastFrame() Frame {
	return r.last
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}
