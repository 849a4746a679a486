package geom

import "iter"

// A Shape is any value covering a finite set of cells. The shape
// itself is a small copyable parameter struct; enumeration state
// lives entirely inside the sequence returned by Points, so a shape
// can be stored, copied, and re-iterated freely.
//
// The shape types in this package — Point, Rect, Line, LineOrtho,
// Circle, CircleOutline, Cone, and Diamond — all implement Shape on
// their pointer type. Callers holding heterogeneous shapes (a list of
// mixed area effects, say) enumerate them through this one interface.
type Shape interface {
	// Points returns a finite iterator over the shape's cells. The
	// ordering and duplicate policy are those of the concrete shape.
	Points() iter.Seq[Point]

	// Pos returns the shape's position.
	Pos() Point

	// SetPos moves the shape without resizing it.
	SetPos(Point)

	// Bounds returns the smallest rect containing the shape.
	Bounds() Rect
}

var (
	_ Shape = (*Point)(nil)
	_ Shape = (*Rect)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*LineOrtho)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*CircleOutline)(nil)
	_ Shape = (*Cone)(nil)
	_ Shape = (*Diamond)(nil)
)

// Points returns an iterator yielding only p itself, making a single
// cell usable anywhere a Shape is.
func (p Point) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		yield(p)
	}
}

// Pos returns p itself.
func (p *Point) Pos() Point {
	return *p
}

// SetPos moves the point to pos.
func (p *Point) SetPos(pos Point) {
	*p = pos
}

// Bounds returns the 1x1 rect covering only p.
func (p *Point) Bounds() Rect {
	return RectFromPoints(*p, *p)
}

// Pos returns the rect's bottom left cell.
func (r *Rect) Pos() Point {
	return r.Origin
}

// SetPos moves the rect's bottom left cell to pos, keeping its size.
func (r *Rect) SetPos(pos Point) {
	r.Origin = pos
}

// Bounds returns the rect itself.
func (r *Rect) Bounds() Rect {
	return *r
}

// CollectShape gathers every cell of s into a slice sized from the
// shape's bounds.
func CollectShape(s Shape) []Point {
	points := make([]Point, 0, s.Bounds().Size.Count())
	for p := range s.Points() {
		points = append(points, p)
	}
	return points
}
