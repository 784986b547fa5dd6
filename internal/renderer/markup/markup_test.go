package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"{", "{open}"},
		{"}", "{close}"},
		{"f(x) { return }", "f(x) {open} return {close}"},
		{"{{}}", "{open}{open}{close}{close}"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q): expected %q, got %q", tt.in, tt.want, got)
		}
		if got := Strip(Escape(tt.in)); got != tt.in {
			t.Errorf("Strip(Escape(%q)): expected round trip, got %q", tt.in, got)
		}
	}
}

func TestScan(t *testing.T) {
	got := Scan("a{red-fg}b{/red-fg}{/}{open}")
	want := []Token{
		{Text: "a", Offset: 0},
		{Text: "{red-fg}", Offset: 1, Tag: true, Name: "red-fg"},
		{Text: "b", Offset: 9},
		{Text: "{/red-fg}", Offset: 10, Tag: true, Close: true, Name: "red-fg"},
		{Text: "{/}", Offset: 19, Tag: true, Close: true},
		{Text: "{open}", Offset: 22, Tag: true, Name: "open"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanNotATag(t *testing.T) {
	got := Scan("{a b}")
	if len(got) != 1 || got[0].Tag {
		t.Errorf("expected a single text token, got %+v", got)
	}
}

func TestLayoutIndex(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		index  []int // Index(0..len(index)-1)
	}{
		{"plain", "abc", []int{0, 1, 2, 3, 3}},
		{"escaped brace", "a{open}b", []int{0, 1, 7, 8, 8}},
		{"leading style", "{red-fg}ab", []int{0, 9, 10, 10}},
		{"style between", "a{bold}b", []int{0, 1, 8, 8}},
		{"trailing style", "ab{/}", []int{0, 1, 2, 5}},
		{"multibyte", "héllo", []int{0, 1, 3, 4}},
		{"empty", "", []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.markup)
			for k, want := range tt.index {
				if got := l.Index(k); got != want {
					t.Errorf("Index(%d): expected %d, got %d", k, want, got)
				}
			}
			if got := l.Index(-3); got != 0 {
				t.Errorf("negative index should map to 0, got %d", got)
			}
		})
	}
}

func TestLayoutLen(t *testing.T) {
	l := NewLayout("x{open}{bold}y{close}")
	if l.Len() != 4 {
		t.Errorf("expected 4 plain units, got %d", l.Len())
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name       string
		markup     string
		start, end int
		want       string
	}{
		{"plain", "hello", 1, 3, "h{S}el{/}lo"},
		{"after escaped brace", Escape("{ab"), 1, 3, "{open}{S}ab{/}"},
		{"covers escaped brace", Escape("a{b"), 0, 2, "{S}a{open}{/}b"},
		{"whole line", Escape("{}"), 0, 2, "{S}{open}{close}{/}"},
		{"end past text", "ab", 1, 10, "a{S}b{/}"},
		{"empty range", "ab", 1, 1, "ab"},
		{"reversed range", "ab", 2, 1, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Highlight(tt.markup, tt.start, tt.end, "{S}", Reset); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHighlightPreservesText(t *testing.T) {
	line := Escape("if (x) { y } else {z}")
	plain := Strip(line)
	n := len([]rune(plain))

	for start := 0; start <= n; start++ {
		for end := start + 1; end <= n; end++ {
			got := Highlight(line, start, end, "{blue-bg}", Reset)
			if Strip(got) != plain {
				t.Fatalf("highlight [%d,%d) changed the text: %q", start, end, got)
			}
			selected := []rune(plain)[start:end]
			open := strings.Index(got, "{blue-bg}")
			closeAt := strings.Index(got, Reset)
			if inner := Strip(got[open+len("{blue-bg}") : closeAt]); inner != string(selected) {
				t.Fatalf("highlight [%d,%d): expected %q inside, got %q", start, end, string(selected), inner)
			}
		}
	}
}
