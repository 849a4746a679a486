package geom

import "iter"

// A Rect is an axis-aligned rectangle of cells. Origin is always the
// bottom-left-most cell and the rect covers Origin through Max
// inclusive. A Rect with an empty Size covers no cells; such rects
// are valid and iterate nothing.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect returns the rect with the given bottom left cell and size.
// No validation is performed; a zero-size rect deliberately
// represents an empty region.
func NewRect(pos Point, size Size) Rect {
	return Rect{Origin: pos, Size: size}
}

// RectFromPoints returns the smallest rect containing both a and b.
// The corners may be given in any order, and a == b produces a 1x1
// rect.
func RectFromPoints(a, b Point) Rect {
	mn := a.Min(b)
	mx := a.Max(b)
	return Rect{
		Origin: mn,
		Size:   mx.Sub(mn).Add(Point{1, 1}).Size(),
	}
}

// RectCentered returns the rect of the given size whose center cell
// is c. For even sizes the center cell is the one toward the bottom
// left, so RectCentered(c, s).Center() == c for every size.
func RectCentered(c Point, size Size) Rect {
	return Rect{
		Origin: c.Sub(size.center()),
		Size:   size,
	}
}

// RectOrigin returns the rect of the given size centered on (0, 0).
func RectOrigin(size Size) Rect {
	return RectCentered(Point{}, size)
}

// Min returns the bottom left cell of the rect.
func (r Rect) Min() Point {
	return r.Origin
}

// Max returns the top right cell of the rect. For an empty rect Max
// is componentwise less than Min.
func (r Rect) Max() Point {
	return r.Origin.Add(r.Size.Point()).Sub(Point{1, 1})
}

// Center returns the center cell of the rect, truncating toward the
// bottom left for even sizes.
func (r Rect) Center() Point {
	return r.Origin.Add(r.Size.center())
}

// Width returns the number of columns in the rect.
func (r Rect) Width() int {
	return r.Size.W
}

// Height returns the number of rows in the rect.
func (r Rect) Height() int {
	return r.Size.H
}

// Left returns the x coordinate of the rect's leftmost column.
func (r Rect) Left() int {
	return r.Origin.X
}

// Right returns the x coordinate of the rect's rightmost column.
func (r Rect) Right() int {
	return r.Origin.X + r.Size.W - 1
}

// Bottom returns the y coordinate of the rect's bottom row.
func (r Rect) Bottom() int {
	return r.Origin.Y
}

// Top returns the y coordinate of the rect's top row.
func (r Rect) Top() int {
	return r.Origin.Y + r.Size.H - 1
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Contains reports whether p is one of the rect's cells.
func (r Rect) Contains(p Point) bool {
	mx := r.Max()
	return p.X >= r.Origin.X && p.Y >= r.Origin.Y && p.X <= mx.X && p.Y <= mx.Y
}

// ContainsRect reports whether every cell of o is also a cell of r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min()) && r.Contains(o.Max())
}

// Overlaps reports whether r and o share at least one cell. The test
// is symmetric, and any non-empty rect overlaps itself.
func (r Rect) Overlaps(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	rmax, omax := r.Max(), o.Max()
	return r.Origin.X <= omax.X && o.Origin.X <= rmax.X &&
		r.Origin.Y <= omax.Y && o.Origin.Y <= rmax.Y
}

// Clipped returns the intersection of r and the clipping rect. When
// the rects do not intersect the result is empty and iterates no
// cells.
func (r Rect) Clipped(clip Rect) Rect {
	mn := r.Min().Max(clip.Min())
	mx := r.Max().Min(clip.Max())
	return Rect{
		Origin: mn,
		Size:   Sz(max(mx.X-mn.X+1, 0), max(mx.Y-mn.Y+1, 0)),
	}
}

// EnvelopePoint grows the rect the minimal amount needed to contain
// p. It never shrinks the rect.
func (r Rect) EnvelopePoint(p Point) Rect {
	if r.IsEmpty() {
		return RectFromPoints(p, p)
	}
	return RectFromPoints(r.Min().Min(p), r.Max().Max(p))
}

// Merge grows the rect the minimal amount needed to contain every
// cell of o. It never shrinks the rect.
func (r Rect) Merge(o Rect) Rect {
	switch {
	case o.IsEmpty():
		return r
	case r.IsEmpty():
		return o
	}
	return RectFromPoints(r.Min().Min(o.Min()), r.Max().Max(o.Max()))
}

// Translated returns the rect moved by the given offset.
func (r Rect) Translated(offset Point) Rect {
	return Rect{Origin: r.Origin.Add(offset), Size: r.Size}
}

// Corners returns the rect's corner cells in the order bottom left,
// top left, top right, bottom right.
func (r Rect) Corners() [4]Point {
	mn, mx := r.Min(), r.Max()
	return [4]Point{
		mn,
		{mn.X, mx.Y},
		mx,
		{mx.X, mn.Y},
	}
}

// PivotPoint returns the cell of the named anchor on this rect,
// consistent with Corners and, for PivotCenter, with Center.
func (r Rect) PivotPoint(pivot Pivot) Point {
	return r.Origin.Add(pivot.cell(r.Size))
}

// Points returns an iterator over every cell in the rect in
// row-major order starting at the bottom left.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		it := r.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// PointsBack returns an iterator over every cell in the rect in
// reverse row-major order starting at the top right.
func (r Rect) PointsBack() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		it := r.Iter()
		for p, ok := it.NextBack(); ok; p, ok = it.NextBack() {
			if !yield(p) {
				return
			}
		}
	}
}

// Border returns an iterator that walks the rect's perimeter
// clockwise starting at the bottom left corner, visiting every border
// cell exactly once. Rects a single cell wide or tall are walked
// without revisiting any cell.
func (r Rect) Border() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.IsEmpty() {
			return
		}
		mn, mx := r.Min(), r.Max()

		// Left column, bottom to top.
		for y := mn.Y; y <= mx.Y; y++ {
			if !yield(Pt(mn.X, y)) {
				return
			}
		}
		if mx.X == mn.X {
			return
		}
		// Top row, left to right, excluding the top left corner.
		for x := mn.X + 1; x <= mx.X; x++ {
			if !yield(Pt(x, mx.Y)) {
				return
			}
		}
		if mx.Y == mn.Y {
			return
		}
		// Right column, top to bottom, excluding the top right corner.
		for y := mx.Y - 1; y >= mn.Y; y-- {
			if !yield(Pt(mx.X, y)) {
				return
			}
		}
		// Bottom row, right to left, excluding both remaining corners.
		for x := mx.X - 1; x > mn.X; x-- {
			if !yield(Pt(x, mn.Y)) {
				return
			}
		}
	}
}

// Iter returns a double-ended cursor over the rect's cells. The
// cursor is independent of the rect; constructing a new one restarts
// the walk.
func (r Rect) Iter() *RectIter {
	return &RectIter{
		origin: r.Origin,
		width:  r.Size.W,
		tail:   r.Size.Count() - 1,
	}
}

// A RectIter enumerates the cells of a Rect in row-major order. The
// forward and backward cursors are independent: interleaving Next and
// NextBack never yields a cell twice and never skips one. The cursor
// is exhausted once the two ends meet.
type RectIter struct {
	origin     Point
	width      int
	head, tail int
}

// Next returns the next cell from the front of the walk. It reports
// false once every cell has been consumed from either end.
func (it *RectIter) Next() (Point, bool) {
	if it.head > it.tail {
		return Point{}, false
	}
	p := it.at(it.head)
	it.head++
	return p, true
}

// NextBack returns the next cell from the back of the walk, starting
// at the top right. It reports false once every cell has been
// consumed from either end.
func (it *RectIter) NextBack() (Point, bool) {
	if it.tail < it.head {
		return Point{}, false
	}
	p := it.at(it.tail)
	it.tail--
	return p, true
}

// Len returns the exact number of cells remaining.
func (it *RectIter) Len() int {
	return it.tail - it.head + 1
}

func (it *RectIter) at(i int) Point {
	return it.origin.Add(Pt(i%it.width, i/it.width))
}
