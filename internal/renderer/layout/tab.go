// Package layout converts between buffer columns and visible columns.
//
// Every tab renders as exactly tabWidth cells, independent of where it
// sits on the line. A real column counts runes; a visible column counts
// rendered cells.
package layout

import "strings"

// DefaultTabWidth is the width a tab renders at unless configured.
const DefaultTabWidth = 4

// TabExpander provides tab expansion utilities.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabWidth
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// SetTabWidth sets the tab width.
func (t *TabExpander) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	t.tabWidth = width
}

// runeWidth returns the cells a rune occupies.
func (t *TabExpander) runeWidth(r rune) int {
	if r == '\t' {
		return t.tabWidth
	}
	return 1
}

// ExpandedWidth calculates the visual width of a string with tab expansion.
func (t *TabExpander) ExpandedWidth(s string) int {
	col := 0
	for _, r := range s {
		col += t.runeWidth(r)
	}
	return col
}

// ExpandTabs returns a string with every tab replaced by tabWidth spaces.
func (t *TabExpander) ExpandTabs(s string) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", t.tabWidth))
}

// VisibleColumn converts a real column of line to the visible column it
// renders at. Columns past the end of line count one cell each.
func (t *TabExpander) VisibleColumn(line string, realCol int) int {
	col, i := 0, 0
	for _, r := range line {
		if i >= realCol {
			return col
		}
		col += t.runeWidth(r)
		i++
	}
	if realCol > i {
		col += realCol - i
	}
	return col
}

// RealColumn converts a visible column back to a real column of line.
// A visible column that falls inside a tab's expansion maps to the tab
// itself. Columns past the end of line count one cell each.
func (t *TabExpander) RealColumn(line string, visibleCol int) int {
	col, i := 0, 0
	for _, r := range line {
		next := col + t.runeWidth(r)
		if visibleCol < next {
			return i
		}
		col = next
		i++
	}
	if visibleCol > col {
		i += visibleCol - col
	}
	return i
}
