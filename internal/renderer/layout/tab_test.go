package layout

import (
	"testing"
)

func TestNewTabExpander(t *testing.T) {
	te := NewTabExpander(4)
	if te.TabWidth() != 4 {
		t.Errorf("expected tab width 4, got %d", te.TabWidth())
	}

	// Invalid width defaults to 4
	te = NewTabExpander(0)
	if te.TabWidth() != 4 {
		t.Errorf("expected default tab width 4, got %d", te.TabWidth())
	}

	te = NewTabExpander(-1)
	if te.TabWidth() != 4 {
		t.Errorf("expected default tab width 4 for negative, got %d", te.TabWidth())
	}
}

func TestTabExpanderSetTabWidth(t *testing.T) {
	te := NewTabExpander(4)
	te.SetTabWidth(8)
	if te.TabWidth() != 8 {
		t.Errorf("expected tab width 8, got %d", te.TabWidth())
	}

	te.SetTabWidth(0)
	if te.TabWidth() != 1 {
		t.Errorf("expected minimum tab width 1, got %d", te.TabWidth())
	}
}

func TestExpandedWidth(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"abc", 3},
		{"\t", 4},
		{"a\tb", 6},
		{"abcd\t", 8},
		{"\t\t", 8},
		{"héllo", 5},
	}

	for _, tt := range tests {
		if got := te.ExpandedWidth(tt.s); got != tt.expected {
			t.Errorf("ExpandedWidth(%q): expected %d, got %d", tt.s, tt.expected, got)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	te := NewTabExpander(2)

	if got := te.ExpandTabs("a\tb\t"); got != "a  b  " {
		t.Errorf("expected %q, got %q", "a  b  ", got)
	}
	if got := te.ExpandTabs("plain"); got != "plain" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestVisibleColumn(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		line     string
		col      int
		expected int
	}{
		{"a\tb", 0, 0},
		{"a\tb", 1, 1},
		{"a\tb", 2, 5},
		{"a\tb", 3, 6},
		{"\t\tx", 2, 8},
		{"ab", 4, 4},
	}

	for _, tt := range tests {
		if got := te.VisibleColumn(tt.line, tt.col); got != tt.expected {
			t.Errorf("VisibleColumn(%q, %d): expected %d, got %d", tt.line, tt.col, tt.expected, got)
		}
	}
}

func TestRealColumn(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		line     string
		visible  int
		expected int
	}{
		{"a\tb", 0, 0},
		{"a\tb", 1, 1},
		{"a\tb", 3, 1}, // inside the tab
		{"a\tb", 5, 2},
		{"a\tb", 6, 3},
		{"x", 5, 5},
		{"", -2, 0},
	}

	for _, tt := range tests {
		if got := te.RealColumn(tt.line, tt.visible); got != tt.expected {
			t.Errorf("RealColumn(%q, %d): expected %d, got %d", tt.line, tt.visible, tt.expected, got)
		}
	}
}

func TestRealColumnInvertsVisibleColumn(t *testing.T) {
	lines := []string{"", "abc", "\t", "a\tb", "\t\tfoo\tbar", "x\t\t\ty", "tab\tend\t"}

	for _, width := range []int{1, 2, 4, 8} {
		te := NewTabExpander(width)
		for _, line := range lines {
			n := len([]rune(line))
			for x := 0; x <= n; x++ {
				visible := te.VisibleColumn(line, x)
				if got := te.RealColumn(line, visible); got != x {
					t.Errorf("width %d line %q: RealColumn(VisibleColumn(%d)) = %d", width, line, x, got)
				}
			}
		}
	}
}
