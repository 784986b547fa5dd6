package buffer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"no terminator", "abc", []string{"abc"}},
		{"lf", "ab\ncd", []string{"ab\n", "cd"}},
		{"trailing lf", "ab\n", []string{"ab\n", ""}},
		{"crlf", "ab\r\ncd\r\n", []string{"ab\r\n", "cd\r\n", ""}},
		{"cr", "ab\rcd", []string{"ab\r", "cd"}},
		{"mixed", "a\r\nb\rc\nd", []string{"a\r\n", "b\r", "c\n", "d"}},
		{"blank lines", "\n\n", []string{"\n", "\n", ""}},
		{"cr then lf line", "\r\r\n", []string{"\r", "\r\n", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
			if joined := strings.Join(got, ""); joined != tt.text {
				t.Errorf("expected join %q, got %q", tt.text, joined)
			}
		})
	}
}

func TestBufferRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"hello",
		"line1\nline2\nline3",
		"crlf\r\nfile\r\n",
		"old\rmac\r",
		"mixed\r\nend\nings\r",
		"tabs\tand {braces}\n\n\n",
		"unicode ✓ héllo\nwörld",
	}
	for _, text := range texts {
		b := New(text)
		if got := b.Text(); got != text {
			t.Errorf("round trip: expected %q, got %q", text, got)
		}
		b.SetText(text + "x")
		if got := b.Text(); got != text+"x" {
			t.Errorf("SetText round trip: expected %q, got %q", text+"x", got)
		}
	}
}

func TestBufferLine(t *testing.T) {
	b := New("ab\r\ncd\nef")

	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
	if got := b.Line(0, false); got != "ab\r\n" {
		t.Errorf("expected %q, got %q", "ab\r\n", got)
	}
	if got := b.Line(0, true); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
	if got := b.Line(-5, true); got != "ab" {
		t.Errorf("negative line should clamp to first, got %q", got)
	}
	if got := b.Line(99, false); got != "ef" {
		t.Errorf("large line should clamp to last, got %q", got)
	}
	if got := b.LineLen(1); got != 2 {
		t.Errorf("expected line length 2, got %d", got)
	}
}

func TestBufferClamp(t *testing.T) {
	b := New("abc\nd\n")

	tests := []struct {
		in, want Point
	}{
		{Pt(1, 0), Pt(1, 0)},
		{Pt(-3, -3), Pt(0, 0)},
		{Pt(10, 0), Pt(3, 0)},
		{Pt(10, 1), Pt(1, 1)},
		{Pt(4, 10), Pt(0, 2)},
		{End(), Pt(0, 2)},
		{Origin(), Pt(0, 0)},
	}
	for _, tt := range tests {
		got := b.Clamp(tt.in)
		if got != tt.want {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if again := b.Clamp(got); again != got {
			t.Errorf("Clamp should be idempotent: %v -> %v", got, again)
		}
	}
}

func TestBufferTextRange(t *testing.T) {
	b := New("abc\ndef\nghi")

	tests := []struct {
		start, end Point
		want       string
	}{
		{Pt(0, 0), Pt(3, 0), "abc"},
		{Pt(1, 0), Pt(1, 0), ""},
		{Pt(1, 0), Pt(2, 1), "bc\nde"},
		{Pt(1, 0), Pt(1, 2), "bc\ndef\ng"},
		{Pt(0, 0), Pt(3, 2), "abc\ndef\nghi"},
		{Pt(3, 0), Pt(0, 1), "\n"},
		// reversed input is swapped
		{Pt(2, 1), Pt(1, 0), "bc\nde"},
	}
	for _, tt := range tests {
		if got := b.TextRange(tt.start, tt.end); got != tt.want {
			t.Errorf("TextRange(%v, %v): expected %q, got %q", tt.start, tt.end, tt.want, got)
		}
	}
}

func TestBufferSplice(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		insert     string
		start, end Point
		want       []string
	}{
		{"insert char", "ab\ncd", "X", Pt(1, 0), Pt(1, 0), []string{"aXb\n", "cd"}},
		{"overwrite char", "ab\ncd", "X", Pt(1, 0), Pt(2, 0), []string{"aX\n", "cd"}},
		{"multi-line delete", "abc\ndef\nghi", "", Pt(1, 0), Pt(1, 2), []string{"ahi"}},
		{"join lines", "ab\ncd", "", Pt(2, 0), Pt(0, 1), []string{"abcd"}},
		{"insert newline", "abcd", "\n", Pt(2, 0), Pt(2, 0), []string{"ab\n", "cd"}},
		{"insert lines", "ad", "b\r\nc\r\n", Pt(1, 0), Pt(1, 0), []string{"ab\r\n", "c\r\n", "d"}},
		{"replace across lines", "one\ntwo\nthree", "X\nY", Pt(1, 0), Pt(2, 2), []string{"oX\n", "Yree"}},
		{"into empty", "", "hello", Pt(0, 0), Pt(0, 0), []string{"hello"}},
		{"keeps crlf suffix", "ab\r\ncd", "Z", Pt(0, 0), Pt(2, 0), []string{"Z\r\n", "cd"}},
		{"middle line", "ab\ncd\nef", "X", Pt(1, 1), Pt(1, 1), []string{"ab\n", "cXd\n", "ef"}},
		{"middle line newline", "ab\ncd\nef", "\n", Pt(1, 1), Pt(1, 1), []string{"ab\n", "c\n", "d\n", "ef"}},
		{"cr before lf", "ab\ncd", "\r", Pt(2, 0), Pt(2, 0), []string{"ab\r", "\n", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			before := b.Text()
			b.Splice(tt.insert, tt.start, tt.end)

			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if got := b.LineCount(); got != len(tt.want) {
				t.Errorf("expected %d lines, got %d", len(tt.want), got)
			}

			// Text equals prefix + insert + suffix of the original.
			prefix := New(before).TextRange(Origin(), tt.start)
			suffix := New(before).TextRange(tt.end, New(before).Clamp(End()))
			if got, want := b.Text(), prefix+tt.insert+suffix; got != want {
				t.Errorf("expected text %q, got %q", want, got)
			}

			lines := b.Lines()
			for i, line := range lines[:len(lines)-1] {
				if Terminator(line) == LineEndingNone {
					t.Errorf("line %d %q lost its terminator", i, line)
				}
			}
		})
	}
}

func TestBufferMaxWidth(t *testing.T) {
	b := New("a\nabcd\r\nab")
	if got := b.MaxWidth(RuneLen); got != 4 {
		t.Errorf("expected max width 4, got %d", got)
	}
}

func TestRuneSlice(t *testing.T) {
	tests := []struct {
		s        string
		from, to int
		want     string
	}{
		{"héllo", 1, 3, "él"},
		{"héllo", 0, 100, "héllo"},
		{"héllo", 5, 9, ""},
		{"héllo", 3, 2, ""},
		{"", 0, 1, ""},
		{"abc", -1, 2, "ab"},
	}
	for _, tt := range tests {
		if got := RuneSlice(tt.s, tt.from, tt.to); got != tt.want {
			t.Errorf("RuneSlice(%q, %d, %d): expected %q, got %q", tt.s, tt.from, tt.to, tt.want, got)
		}
	}
}

func TestTerminator(t *testing.T) {
	tests := []struct {
		line string
		want LineEnding
	}{
		{"a\r\n", LineEndingCRLF},
		{"a\n", LineEndingLF},
		{"a\r", LineEndingCR},
		{"a", LineEndingNone},
	}
	for _, tt := range tests {
		if got := Terminator(tt.line); got != tt.want {
			t.Errorf("Terminator(%q): expected %v, got %v", tt.line, tt.want, got)
		}
	}
}
