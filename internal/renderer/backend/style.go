package backend

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Style tags understood by the terminal, besides "<color>-fg" and
// "<color>-bg". A tag may list several styles separated by commas, as in
// "{white-fg,red-bg,bold}".
var attributeTags = map[string]func(tcell.Style) tcell.Style{
	"bold":      func(s tcell.Style) tcell.Style { return s.Bold(true) },
	"dim":       func(s tcell.Style) tcell.Style { return s.Dim(true) },
	"italic":    func(s tcell.Style) tcell.Style { return s.Italic(true) },
	"underline": func(s tcell.Style) tcell.Style { return s.Underline(true) },
	"blink":     func(s tcell.Style) tcell.Style { return s.Blink(true) },
	"reverse":   func(s tcell.Style) tcell.Style { return s.Reverse(true) },
	"strike":    func(s tcell.Style) tcell.Style { return s.StrikeThrough(true) },
}

// ParseColor resolves a color name ("red", "darkcyan") or a hex value
// ("#f80", "#ff8800").
func ParseColor(name string) (tcell.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return tcell.ColorDefault, false
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}
	if name == "default" {
		return tcell.ColorDefault, true
	}
	c, ok := tcell.ColorNames[name]
	return c, ok
}

// applyTag applies the styles named by a tag to s. Unknown names are
// ignored.
func applyTag(s tcell.Style, name string) tcell.Style {
	for _, part := range strings.Split(name, ",") {
		part = strings.TrimSpace(part)
		if fn, ok := attributeTags[part]; ok {
			s = fn(s)
			continue
		}
		if color, ok := strings.CutSuffix(part, "-fg"); ok {
			if c, ok := ParseColor(color); ok {
				s = s.Foreground(c)
			}
			continue
		}
		if color, ok := strings.CutSuffix(part, "-bg"); ok {
			if c, ok := ParseColor(color); ok {
				s = s.Background(c)
			}
		}
	}
	return s
}

// styleStack tracks the open style tags of a line.
type styleStack struct {
	base  tcell.Style
	names []string
	style tcell.Style
}

func newStyleStack(base tcell.Style) *styleStack {
	return &styleStack{base: base, style: base}
}

func (st *styleStack) push(name string) {
	st.names = append(st.names, name)
	st.style = applyTag(st.style, name)
}

// pop closes the innermost tag called name, or every tag if name is empty.
func (st *styleStack) pop(name string) {
	if name == "" {
		st.names = st.names[:0]
		st.style = st.base
		return
	}
	for i := len(st.names) - 1; i >= 0; i-- {
		if st.names[i] == name {
			st.names = append(st.names[:i], st.names[i+1:]...)
			break
		}
	}
	st.style = st.base
	for _, n := range st.names {
		st.style = applyTag(st.style, n)
	}
}
