// Package markup handles the inline style tags understood by the render
// surface: "{name}" opens a style, "{/name}" closes it, "{/}" resets every
// style, and the escape tags "{open}" and "{close}" stand for literal braces.
//
// Text with tags has two index spaces. Plain indexes count the runes a
// reader sees, with each escape tag counting as the one brace it renders.
// Markup indexes are byte offsets into the tagged string. Layout maps the
// first onto the second so styles can be spliced at the right place.
package markup

import (
	"regexp"
	"strings"
)

// Escape tags.
const (
	OpenBrace  = "{open}"
	CloseBrace = "{close}"
)

// Reset closes every open style.
const Reset = "{/}"

var tagPattern = regexp.MustCompile(`\{(/?)([\w\-,;!#]*)\}`)

var escaper = strings.NewReplacer("{", OpenBrace, "}", CloseBrace)

// Escape replaces literal braces with escape tags so user text cannot be
// read as style tags.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Token is a run of text or a single tag.
type Token struct {
	// Text is the raw markup of the token.
	Text string

	// Offset is the byte offset of the token in the scanned string.
	Offset int

	// Tag reports whether the token is a tag.
	Tag bool

	// Close reports whether the tag starts with a slash.
	Close bool

	// Name is the tag name, empty for "{/}".
	Name string
}

// Literal returns what the token renders as: the text itself for text
// tokens, a brace for escape tags, and "" for style tags.
func (t Token) Literal() string {
	if !t.Tag {
		return t.Text
	}
	if t.Close {
		return ""
	}
	switch t.Name {
	case "open":
		return "{"
	case "close":
		return "}"
	}
	return ""
}

// IsEscape reports whether the token is an escape tag.
func (t Token) IsEscape() bool {
	return t.Tag && t.Literal() != ""
}

// Scan splits s into text and tag tokens.
func Scan(s string) []Token {
	var tokens []Token
	pos := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > pos {
			tokens = append(tokens, Token{Text: s[pos:m[0]], Offset: pos})
		}
		tokens = append(tokens, Token{
			Text:   s[m[0]:m[1]],
			Offset: m[0],
			Tag:    true,
			Close:  m[3] > m[2],
			Name:   s[m[4]:m[5]],
		})
		pos = m[1]
	}
	if pos < len(s) {
		tokens = append(tokens, Token{Text: s[pos:], Offset: pos})
	}
	return tokens
}

// Strip returns the text a reader sees.
func Strip(s string) string {
	var sb strings.Builder
	for _, tok := range Scan(s) {
		sb.WriteString(tok.Literal())
	}
	return sb.String()
}
