package xgrid

import (
	"iter"

	"deedles.dev/xgrid/geom"
)

// A GridView is a read-only window onto a rectangular portion of a
// Grid. Local coordinates start at (0, 0) in the view's bottom left
// corner.
type GridView[T any] struct {
	rect geom.Rect
	grid *Grid[T]
}

// Rect returns the grid-space rect the view covers.
func (v GridView[T]) Rect() geom.Rect {
	return v.rect
}

// Len returns the number of cells in the view.
func (v GridView[T]) Len() int {
	return v.rect.Size.Count()
}

// At returns the value at the view-local cell p.
func (v GridView[T]) At(p geom.Point) T {
	return v.grid.At(v.LocalToGrid(p))
}

// LocalToGrid converts a view-local cell to its cell on the
// underlying grid.
func (v GridView[T]) LocalToGrid(p geom.Point) geom.Point {
	return v.rect.Min().Add(p)
}

// GridToLocal converts a grid cell to its view-local cell.
func (v GridView[T]) GridToLocal(p geom.Point) geom.Point {
	return p.Sub(v.rect.Min())
}

// Values returns an iterator over the view's values in row-major
// order.
func (v GridView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range v.rect.Points() {
			if !yield(v.grid.At(p)) {
				return
			}
		}
	}
}

// Cells returns an iterator over the view's cells in row-major
// order, keyed by grid-space position.
func (v GridView[T]) Cells() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p := range v.rect.Points() {
			if !yield(p, v.grid.At(p)) {
				return
			}
		}
	}
}
