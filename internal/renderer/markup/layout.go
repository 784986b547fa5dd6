package markup

import "unicode/utf8"

// Layout maps plain indexes of a tagged string to markup indexes.
//
// Building the layout is the first pass: it walks the tokens once and
// records, for every plain unit, the markup offset where it ends. Index is
// the second pass and only reads that table, so a different escaping
// scheme only has to change how the table is built.
type Layout struct {
	markup string
	ends   []int
}

// NewLayout scans markup and builds its offset table.
func NewLayout(markup string) *Layout {
	l := &Layout{markup: markup}
	for _, tok := range Scan(markup) {
		if tok.Tag {
			if tok.IsEscape() {
				l.ends = append(l.ends, tok.Offset+len(tok.Text))
			}
			continue
		}
		for i, r := range tok.Text {
			l.ends = append(l.ends, tok.Offset+i+utf8.RuneLen(r))
		}
	}
	return l
}

// Len returns the number of plain units.
func (l *Layout) Len() int {
	return len(l.ends)
}

// Index returns the markup offset of plain index k. For k inside the text
// it is the offset just after unit k-1, so style tags that precede unit k
// stay after the returned offset. k equal to Len gives the end of the last
// unit; anything past that gives the end of the markup.
func (l *Layout) Index(k int) int {
	switch {
	case k <= 0:
		return 0
	case k <= len(l.ends):
		return l.ends[k-1]
	default:
		return len(l.markup)
	}
}

// Highlight wraps plain range [start, end) of markup in open and reset.
// Nothing is inserted when the range is empty.
func Highlight(markup string, start, end int, open, reset string) string {
	if start >= end {
		return markup
	}
	l := NewLayout(markup)
	a, b := l.Index(start), l.Index(end)
	return markup[:a] + open + markup[a:b] + reset + markup[b:]
}
