package buffer

import (
	"strings"
	"unicode/utf8"
)

// LineEnding is one of the terminators a line may carry.
type LineEnding string

const (
	LineEndingNone LineEnding = ""     // last line of a document
	LineEndingLF   LineEnding = "\n"   // Unix
	LineEndingCRLF LineEnding = "\r\n" // Windows
	LineEndingCR   LineEnding = "\r"   // Old Mac
)

// SplitLines splits text on \r\n, \r or \n. Every piece keeps its
// terminator and the trailing unterminated piece is always present, so the
// result has at least one element and joining it restores text exactly.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		case '\n':
		default:
			continue
		}
		lines = append(lines, text[start:i+1])
		start = i + 1
	}
	return append(lines, text[start:])
}

// Terminator returns the line ending carried by line.
func Terminator(line string) LineEnding {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return LineEndingCRLF
	case strings.HasSuffix(line, "\n"):
		return LineEndingLF
	case strings.HasSuffix(line, "\r"):
		return LineEndingCR
	default:
		return LineEndingNone
	}
}

// StripTerminator returns line without its line ending.
func StripTerminator(line string) string {
	return line[:len(line)-len(Terminator(line))]
}

// IsBlank reports whether line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// RuneLen returns the number of columns in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// RuneSlice returns the columns [from, to) of s. Bounds are clamped, so
// callers can pass math.MaxInt for "to the end".
func RuneSlice(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return ""
	}
	start, end := -1, len(s)
	col := 0
	for i := range s {
		if col == from {
			start = i
		}
		if col == to {
			end = i
			break
		}
		col++
	}
	if start < 0 {
		return ""
	}
	return s[start:end]
}
