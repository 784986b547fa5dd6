package viewport

import (
	"testing"

	"github.com/dshills/tagedit/internal/engine/buffer"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(80, 24)

	if v.Width() != 80 {
		t.Errorf("expected width 80, got %d", v.Width())
	}
	if v.Height() != 24 {
		t.Errorf("expected height 24, got %d", v.Height())
	}
	if v.Scroll() != buffer.Origin() {
		t.Errorf("expected scroll (0:0), got %v", v.Scroll())
	}

	v = NewViewport(0, -3)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("expected minimum size 1x1, got %dx%d", v.Width(), v.Height())
	}
}

func TestViewportClamp(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetExtent(30, 100)

	tests := []struct {
		in, want buffer.Point
	}{
		{buffer.Pt(-4, -4), buffer.Pt(0, 0)},
		{buffer.Pt(5, 20), buffer.Pt(5, 20)},
		{buffer.Pt(500, 500), buffer.Pt(21, 95)},
	}
	for _, tt := range tests {
		if got := v.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	// Content smaller than the viewport never scrolls.
	v.SetExtent(3, 2)
	if got := v.Clamp(buffer.Pt(7, 7)); got != buffer.Pt(0, 0) {
		t.Errorf("expected (0:0) for small content, got %v", got)
	}
}

func TestViewportFollow(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetExtent(100, 100)

	tests := []struct {
		name    string
		cursor  buffer.Point
		want    buffer.Point
		changed bool
	}{
		{"inside", buffer.Pt(3, 2), buffer.Pt(0, 0), false},
		{"below", buffer.Pt(3, 7), buffer.Pt(0, 3), true},
		{"right", buffer.Pt(12, 7), buffer.Pt(3, 3), true},
		{"still visible", buffer.Pt(5, 5), buffer.Pt(3, 3), false},
		{"above and left", buffer.Pt(1, 1), buffer.Pt(1, 1), true},
		{"far jump", buffer.Pt(50, 60), buffer.Pt(41, 56), true},
	}

	for _, tt := range tests {
		changed := v.Follow(tt.cursor)
		if changed != tt.changed {
			t.Errorf("%s: expected changed=%v", tt.name, tt.changed)
		}
		if got := v.Scroll(); got != tt.want {
			t.Errorf("%s: expected scroll %v, got %v", tt.name, tt.want, got)
		}
		if !v.IsVisible(tt.cursor) {
			t.Errorf("%s: cursor %v not visible after follow", tt.name, tt.cursor)
		}
	}
}

func TestViewportFollowEndOfLongestLine(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetExtent(25, 3)

	// Cursor just past the longest line must still fit.
	v.Follow(buffer.Pt(25, 2))
	if !v.IsVisible(buffer.Pt(25, 2)) {
		t.Errorf("cursor at end of longest line not visible, scroll %v", v.Scroll())
	}
	if got := v.Scroll(); got != buffer.Pt(16, 0) {
		t.Errorf("expected scroll (0:16), got %v", got)
	}
}

func TestViewportResizeReclamps(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetExtent(20, 20)
	v.SetScroll(buffer.Pt(11, 15))

	if !v.Resize(20, 10) {
		t.Error("growing the viewport should pull the scroll offset back")
	}
	if got := v.Scroll(); got != buffer.Pt(1, 10) {
		t.Errorf("expected (10:1), got %v", got)
	}
}

func TestViewportSetExtentReclamps(t *testing.T) {
	v := NewViewport(80, 24)
	v.SetExtent(10, 100)

	v.SetScroll(buffer.Pt(0, 10))
	if got := v.Scroll(); got != buffer.Pt(0, 10) {
		t.Errorf("expected scroll (10:0), got %v", got)
	}

	if !v.SetExtent(10, 12) {
		t.Error("expected shrinking content to move the scroll")
	}
	if got := v.Scroll(); got != buffer.Origin() {
		t.Errorf("expected scroll (0:0) after shrinking content, got %v", got)
	}
}

func TestViewportFollowVisibleKeepsScroll(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetExtent(100, 100)
	v.SetScroll(buffer.Pt(20, 20))

	if v.Follow(buffer.Pt(29, 24)) {
		t.Error("expected no scroll for a cursor on the last visible cell")
	}
	if v.IsVisible(buffer.Pt(30, 24)) {
		t.Error("expected (24:30) to be off screen")
	}
}

func TestViewportScreenConversion(t *testing.T) {
	v := NewViewport(10, 5)
	v.SetExtent(100, 100)
	v.SetScroll(buffer.Pt(4, 6))

	p := buffer.Pt(7, 9)
	if got := v.FromScreen(v.ToScreen(p)); got != p {
		t.Errorf("screen round trip: expected %v, got %v", p, got)
	}
	if got := v.ToScreen(p); got != buffer.Pt(3, 3) {
		t.Errorf("expected (3:3), got %v", got)
	}
}
