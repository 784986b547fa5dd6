// Package word locates word boundaries within a single line for word-wise
// cursor motion.
package word

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Match is a word found on a line. Index and Length are in runes.
type Match struct {
	Index  int
	Length int
}

// End returns the column just past the match.
func (m Match) End() int {
	return m.Index + m.Length
}

// Finder locates words on a line. Implementations decide what a word is.
type Finder interface {
	// Prev returns the last word starting before col.
	Prev(line string, col int) (Match, bool)

	// Next returns the word containing col.
	Next(line string, col int) (Match, bool)
}

// Segmenter finds words using Unicode word segmentation. A word is a
// non-space segment together with the whitespace that follows it, so moving
// to the end of a word lands on the start of the next one.
type Segmenter struct{}

// NewSegmenter creates a Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Default is the finder used when none is configured.
var Default Finder = NewSegmenter()

// Words splits line into words.
func (s *Segmenter) Words(line string) []Match {
	var (
		words []Match
		col   int
		state = -1
	)
	for len(line) > 0 {
		var seg string
		seg, line, state = uniseg.FirstWordInString(line, state)
		n := utf8.RuneCountInString(seg)
		if isSpace(seg) && len(words) > 0 {
			words[len(words)-1].Length += n
		} else {
			words = append(words, Match{Index: col, Length: n})
		}
		col += n
	}
	return words
}

// Prev returns the last word starting before col.
func (s *Segmenter) Prev(line string, col int) (Match, bool) {
	var (
		found Match
		ok    bool
	)
	for _, w := range s.Words(line) {
		if w.Index >= col {
			break
		}
		found, ok = w, true
	}
	return found, ok
}

// Next returns the word containing col.
func (s *Segmenter) Next(line string, col int) (Match, bool) {
	for _, w := range s.Words(line) {
		if w.Index <= col && col < w.End() {
			return w, true
		}
	}
	return Match{}, false
}

func isSpace(seg string) bool {
	for _, r := range seg {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return seg != ""
}
