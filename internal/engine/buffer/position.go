package buffer

import (
	"fmt"
	"math"
)

// Point is a column/line position in the buffer.
// X is the column measured in runes, Y is the 0-indexed line.
// Points are values; every method returns a new Point.
type Point struct {
	X int // column (rune offset within the line)
	Y int // line index
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Origin returns the document start sentinel (0,0).
func Origin() Point {
	return Point{}
}

// End returns the document end sentinel. Clamping it yields the last
// position of the last line.
func End() Point {
	return Point{X: math.MaxInt, Y: math.MaxInt}
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Min returns the componentwise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// Compare orders points row-major.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Y < other.Y {
		return -1
	}
	if p.Y > other.Y {
		return 1
	}
	if p.X < other.X {
		return -1
	}
	if p.X > other.X {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Order returns a and b sorted so that the first is not after the second.
func Order(a, b Point) (Point, Point) {
	if a.After(b) {
		return b, a
	}
	return a, b
}
