package xgrid

import (
	"iter"

	"deedles.dev/xgrid/geom"
	"deedles.dev/xiter"
)

// A Grid is a dense grid of T stored in a single slice. Its size is
// fixed at creation; cells can be changed but not added or removed.
// Access and iteration are O(1) per cell.
type Grid[T any] struct {
	gridSize
	data []T
}

// NewGrid returns a grid of the given size with every cell set to the
// zero value of T.
func NewGrid[T any](size geom.Size) *Grid[T] {
	return &Grid[T]{
		gridSize: gridSize(size),
		data:     make([]T, size.Count()),
	}
}

// NewGridFilled returns a grid of the given size with every cell set
// to value.
func NewGridFilled[T any](value T, size geom.Size) *Grid[T] {
	g := NewGrid[T](size)
	g.Fill(value)
	return g
}

// At returns the value at cell p. The cell must be in bounds; use
// TryAt for the checked variant.
func (g *Grid[T]) At(p geom.Point) T {
	return g.data[g.PointToIndex(p)]
}

// TryAt returns the value at cell p, reporting false when p is out of
// bounds.
func (g *Grid[T]) TryAt(p geom.Point) (T, bool) {
	i, ok := g.TryPointToIndex(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

// AtPivoted returns the value at a pivot-relative cell.
func (g *Grid[T]) AtPivoted(pp geom.PivotedPoint) T {
	return g.At(g.resolve(pp))
}

// AtIndex returns the value at the given linear index.
func (g *Grid[T]) AtIndex(i int) T {
	return g.data[i]
}

// Set sets the value at cell p. The cell must be in bounds.
func (g *Grid[T]) Set(p geom.Point, value T) {
	g.data[g.PointToIndex(p)] = value
}

// SetPivoted sets the value at a pivot-relative cell.
func (g *Grid[T]) SetPivoted(pp geom.PivotedPoint, value T) {
	g.Set(g.resolve(pp), value)
}

// SetIndex sets the value at the given linear index.
func (g *Grid[T]) SetIndex(i int, value T) {
	g.data[i] = value
}

// Fill sets every cell to value.
func (g *Grid[T]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Slice returns the grid's backing slice in row-major order.
func (g *Grid[T]) Slice() []T {
	return g.data
}

// Values returns an iterator over every value in the grid in
// row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells returns an iterator over every cell and its value in
// row-major order.
func (g *Grid[T]) Cells() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for i, v := range g.data {
			if !yield(g.IndexToPoint(i), v) {
				return
			}
		}
	}
}

// RectCells returns an iterator over the cells of r and their values.
// The rect is clipped to the grid's bounds first, so out-of-bounds
// regions simply iterate fewer cells.
func (g *Grid[T]) RectCells(r geom.Rect) iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p := range r.Clipped(g.Bounds()).Points() {
			if !yield(p, g.At(p)) {
				return
			}
		}
	}
}

// Row returns an iterator over the values of row y from left to
// right. The row must be in bounds.
func (g *Grid[T]) Row(y int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.RowSlice(y) {
			if !yield(v) {
				return
			}
		}
	}
}

// RowSlice returns the backing slice of row y. The row must be in
// bounds.
func (g *Grid[T]) RowSlice(y int) []T {
	if y < 0 || y >= g.H {
		panic("xgrid: row out of range")
	}
	i := y * g.W
	return g.data[i : i+g.W : i+g.W]
}

// Column returns an iterator over the values of column x from bottom
// to top. The column must be in bounds.
func (g *Grid[T]) Column(x int) iter.Seq[T] {
	if x < 0 || x >= g.W {
		panic("xgrid: column out of range")
	}
	return func(yield func(T) bool) {
		for i := x; i < len(g.data); i += g.W {
			if !yield(g.data[i]) {
				return
			}
		}
	}
}

// InsertRow writes the values of row into row y starting at the left
// edge, stopping at the grid's right edge.
func (g *Grid[T]) InsertRow(y int, row iter.Seq[T]) {
	g.InsertRowAt(geom.Pt(0, y), row)
}

// InsertRowAt writes the values of row into the grid rightwards from
// p, stopping at the grid's right edge.
func (g *Grid[T]) InsertRowAt(p geom.Point, row iter.Seq[T]) {
	for i, v := range xiter.Enumerate(row) {
		x := p.X + i
		if x >= g.W {
			return
		}
		g.Set(geom.Pt(x, p.Y), v)
	}
}

// InsertColumn writes the values of column into column x starting at
// the bottom edge, stopping at the grid's top edge.
func (g *Grid[T]) InsertColumn(x int, column iter.Seq[T]) {
	g.InsertColumnAt(geom.Pt(x, 0), column)
}

// InsertColumnAt writes the values of column into the grid upwards
// from p, stopping at the grid's top edge.
func (g *Grid[T]) InsertColumnAt(p geom.Point, column iter.Seq[T]) {
	for i, v := range xiter.Enumerate(column) {
		y := p.Y + i
		if y >= g.H {
			return
		}
		g.Set(geom.Pt(p.X, y), v)
	}
}

// View returns a read-only view of the cells of r. The rect is
// clipped to the grid's bounds.
func (g *Grid[T]) View(r geom.Rect) GridView[T] {
	return GridView[T]{
		rect: r.Clipped(g.Bounds()),
		grid: g,
	}
}
