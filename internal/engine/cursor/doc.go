// Package cursor provides the value types for the cursor and selection.
//
// Selection Model:
//
// A selection uses an anchor/head model where:
//   - Anchor: the fixed end, set when the selection started (a Mark)
//   - Head: the moving end, always the cursor
//
// An inactive Mark means there is no selection. Selection.Start and
// Selection.End return the bounds ordered row-major, whichever direction the
// selection was made in.
//
// Cursor carries the sticky preferred visible column used to keep vertical
// motion visually aligned across lines of different length or tab layout.
//
// All types here are immutable values and safe to copy.
package cursor
