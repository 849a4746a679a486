package geom

// A Pivot is a named anchor on a rectangular region. It is used to
// reinterpret a locally authored offset as a position relative to
// that anchor: the offset's axes are flipped to point into the region
// and the anchor's cell is added.
type Pivot uint8

const (
	// +X right, +Y down.
	PivotTopLeft Pivot = iota
	// +X left, +Y down.
	PivotTopRight
	// +X right, +Y up.
	PivotCenter
	// +X right, +Y up.
	PivotBottomLeft
	// +X left, +Y up.
	PivotBottomRight
)

// String returns the name of the pivot.
func (p Pivot) String() string {
	switch p {
	case PivotTopLeft:
		return "TopLeft"
	case PivotTopRight:
		return "TopRight"
	case PivotCenter:
		return "Center"
	case PivotBottomLeft:
		return "BottomLeft"
	case PivotBottomRight:
		return "BottomRight"
	}
	return "InvalidPivot"
}

// Axis returns the per-component direction, ±1, that a local offset
// authored relative to p travels in world space.
func (p Pivot) Axis() Point {
	switch p {
	case PivotTopLeft:
		return Point{1, -1}
	case PivotTopRight:
		return Point{-1, -1}
	case PivotBottomRight:
		return Point{-1, 1}
	}
	return Point{1, 1}
}

// Anchor returns the pivot's normalized position within a rectangle,
// with (0, 0) at the bottom left corner and (1, 1) at the top right.
func (p Pivot) Anchor() (x, y float64) {
	switch p {
	case PivotTopLeft:
		return 0, 1
	case PivotTopRight:
		return 1, 1
	case PivotCenter:
		return 0.5, 0.5
	case PivotBottomRight:
		return 1, 0
	}
	return 0, 0
}

// cell returns the cell offset of the pivot's anchor within a region
// of the given size. For PivotCenter on even sizes this truncates
// toward the bottom left, consistent with Size.center.
func (p Pivot) cell(size Size) Point {
	ax, ay := p.Anchor()
	return Point{
		int(float64(size.W-1) * ax),
		int(float64(size.H-1) * ay),
	}
}

// Aligned transforms a point authored relative to p into its
// equivalent bottom-left-relative point on a region of the given
// size.
//
//	PivotTopRight.Aligned(Pt(0, 0), Sz(10, 10)) == Pt(9, 9)
//	PivotTopLeft.Aligned(Pt(3, 3), Sz(10, 10)) == Pt(3, 6)
func (p Pivot) Aligned(point Point, size Size) Point {
	axis := p.Axis()
	anchor := p.cell(size)
	return Point{point.X*axis.X + anchor.X, point.Y*axis.Y + anchor.Y}
}

// A PivotedPoint is a point tagged with the pivot it was authored
// relative to. Grid containers resolve it against their own size when
// it is used to index into them.
type PivotedPoint struct {
	Point Point
	Pivot Pivot
}

// Pivot tags p as being relative to the given pivot.
func (p Point) Pivot(pivot Pivot) PivotedPoint {
	return PivotedPoint{Point: p, Pivot: pivot}
}

// Aligned resolves the tagged point against a region of the given
// size.
func (pp PivotedPoint) Aligned(size Size) Point {
	return pp.Pivot.Aligned(pp.Point, size)
}
