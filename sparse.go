package xgrid

import (
	"iter"
	"slices"

	"deedles.dev/xgrid/geom"
	"deedles.dev/xiter"
)

// A SparseGrid is a grid of T that only stores the cells that have
// been set. It has a fixed extent like a dense Grid but its memory
// use is proportional to the number of occupied cells. Iteration is
// deterministic, in linear index order.
type SparseGrid[T any] struct {
	gridSize
	data map[int]T
}

// NewSparseGrid returns an empty sparse grid with the given extent.
func NewSparseGrid[T any](size geom.Size) *SparseGrid[T] {
	return &SparseGrid[T]{
		gridSize: gridSize(size),
		data:     make(map[int]T),
	}
}

// Len returns the number of occupied cells.
func (g *SparseGrid[T]) Len() int {
	return len(g.data)
}

// IsEmpty reports whether no cells are occupied.
func (g *SparseGrid[T]) IsEmpty() bool {
	return len(g.data) == 0
}

// At returns the value at cell p, reporting false when the cell is
// unoccupied or out of bounds.
func (g *SparseGrid[T]) At(p geom.Point) (T, bool) {
	i, ok := g.TryPointToIndex(p)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := g.data[i]
	return v, ok
}

// Set sets the value at cell p. The cell must be in bounds.
func (g *SparseGrid[T]) Set(p geom.Point, value T) {
	g.data[g.PointToIndex(p)] = value
}

// SetPivoted sets the value at a pivot-relative cell.
func (g *SparseGrid[T]) SetPivoted(pp geom.PivotedPoint, value T) {
	g.Set(g.resolve(pp), value)
}

// Delete removes the value at cell p, if any.
func (g *SparseGrid[T]) Delete(p geom.Point) {
	if i, ok := g.TryPointToIndex(p); ok {
		delete(g.data, i)
	}
}

// Clear removes every occupied cell.
func (g *SparseGrid[T]) Clear() {
	clear(g.data)
}

// Cells returns an iterator over the occupied cells and their values
// in linear index order.
func (g *SparseGrid[T]) Cells() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		keys := make([]int, 0, len(g.data))
		for i := range g.data {
			keys = append(keys, i)
		}
		slices.Sort(keys)
		for _, i := range keys {
			if !yield(g.IndexToPoint(i), g.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the occupied values in linear
// index order.
func (g *SparseGrid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.Cells() {
			if !yield(v) {
				return
			}
		}
	}
}

// InsertRow writes the values of row into row y starting at the left
// edge, stopping at the grid's right edge.
func (g *SparseGrid[T]) InsertRow(y int, row iter.Seq[T]) {
	g.InsertRowAt(geom.Pt(0, y), row)
}

// InsertRowAt writes the values of row into the grid rightwards from
// p, stopping at the grid's right edge.
func (g *SparseGrid[T]) InsertRowAt(p geom.Point, row iter.Seq[T]) {
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
func (g *SparseGrid[T]) InsertColumn(x int, column iter.Seq[T]) {
	g.InsertColumnAt(geom.Pt(x, 0), column)
}

// InsertColumnAt writes the values of column into the grid upwards
// from p, stopping at the grid's top edge.
func (g *SparseGrid[T]) InsertColumnAt(p geom.Point, column iter.Seq[T]) {
	for i, v := range xiter.Enumerate(column) {
		y := p.Y + i
		if y >= g.H {
			return
		}
		g.Set(geom.Pt(p.X, y), v)
	}
}
