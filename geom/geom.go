// Package geom provides primitives for working with shapes on a 2d
// grid of integer cells.
//
// It is patterned after image.Rectangle and image.Point, but uses
// inclusive extents: a cell is a discrete (x, y) position, a Rect
// covers the cells between its Min and Max corners inclusive, and
// every shape enumerates the exact set of cells that it covers.
package geom

import (
	"golang.org/x/exp/constraints"
)

// Point is a single cell position on a grid.
type Point struct {
	X, Y int
}

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{x, y}
}

// PtOf converts a pair of any integer type into a Point. It is
// intended for call sites that hold coordinates in a type other than
// int.
func PtOf[T constraints.Integer](x, y T) Point {
	return Point{int(x), int(y)}
}

// PtRound returns the point nearest to the real-valued position
// (x, y), rounding half away from zero on each axis.
func PtRound(x, y float64) Point {
	return Point{round(x), round(y)}
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the componentwise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p with both components multiplied by k.
func (p Point) Mul(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Neg returns p with both components negated.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Abs returns p with both components made nonnegative.
func (p Point) Abs() Point {
	return Point{abs(p.X), abs(p.Y)}
}

// Min returns the componentwise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{min(p.X, q.X), min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{max(p.X, q.X), max(p.Y, q.Y)}
}

// Size returns p reinterpreted as an extent.
func (p Point) Size() Size {
	return Size{p.X, p.Y}
}

// Size is the extent of a rectangular region in cells. Both
// components are expected to be nonnegative; a Size with a zero
// component is empty.
type Size struct {
	W, H int
}

// Sz returns the size (w, h).
func Sz(w, h int) Size {
	return Size{w, h}
}

// SzOf converts a pair of any integer type into a Size.
func SzOf[T constraints.Integer](w, h T) Size {
	return Size{int(w), int(h)}
}

// Square returns the size (n, n).
func Square(n int) Size {
	return Size{n, n}
}

// Count returns the number of cells in a region of this size.
func (s Size) Count() int {
	return s.W * s.H
}

// IsEmpty reports whether a region of this size contains no cells.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Point returns s reinterpreted as a point.
func (s Size) Point() Point {
	return Point{s.W, s.H}
}

// center returns the offset of the center cell within a region of
// this size. For even sizes the offset truncates toward the bottom
// left. All pivot and centering math in this package uses this same
// rounding.
func (s Size) center() Point {
	return Point{(s.W - 1) / 2, (s.H - 1) / 2}
}

// Cell offsets for the four cardinal and four diagonal neighbors of
// a cell. Up is +Y.
var (
	Up        = Point{0, 1}
	Down      = Point{0, -1}
	Left      = Point{-1, 0}
	Right     = Point{1, 0}
	UpLeft    = Point{-1, 1}
	UpRight   = Point{1, 1}
	DownLeft  = Point{-1, -1}
	DownRight = Point{1, -1}
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// round rounds half away from zero, matching math.Round without the
// float64 special cases that cell math can't produce.
func round(v float64) int {
	if v < 0 {
		return -round(-v)
	}
	return int(v + 0.5)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
