// Package buffer provides the line-oriented text store behind the editor.
//
// A document is held as a slice of lines, each keeping the terminator it was
// loaded with (\r\n, \r or \n; the last line has none). Joining the lines
// reproduces the original text byte for byte, so load/save is lossless.
//
// Positions are Points: X is a column counted in runes, Y a line index.
// Points compare row-major, and Buffer.Clamp maps any Point, including the
// Origin and End sentinels, to the nearest position that exists.
//
// Basic usage:
//
//	buf := buffer.New("ab\ncd")
//	buf.Splice("X", buffer.Pt(1, 0), buffer.Pt(1, 0)) // "aXb\ncd"
//	buf.TextRange(buffer.Pt(1, 0), buffer.Pt(1, 1))   // "Xb\nc"
//
// Buffer is not safe for concurrent use.
package buffer
