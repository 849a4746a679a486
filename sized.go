// Package xgrid provides storage containers for data on a 2d grid of
// cells: a dense grid, a sparse grid, a bit grid, and a float grid,
// along with world-positioned variants. The geometry itself — cells,
// rects, pivots, and shape rasterizers — lives in the geom
// subpackage.
package xgrid

import (
	"iter"

	"deedles.dev/xgrid/geom"
)

// A SizedGrid is any grid with a rectangular extent. It can convert
// between cells and linear indices and enumerate its own cells.
type SizedGrid interface {
	// Size returns the grid's extent.
	Size() geom.Size

	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// TileCount returns the total number of cells.
	TileCount() int

	// InBounds reports whether p is one of the grid's cells.
	InBounds(p geom.Point) bool

	// PointToIndex converts a cell to its linear index, y*width+x.
	// The cell must be in bounds; the caller checks.
	PointToIndex(p geom.Point) int

	// TryPointToIndex converts a cell to its linear index, reporting
	// false when the cell is out of bounds.
	TryPointToIndex(p geom.Point) (int, bool)

	// IndexToPoint converts a linear index back to its cell.
	IndexToPoint(i int) geom.Point

	// Bounds returns the grid's extent as a rect anchored at (0, 0).
	Bounds() geom.Rect

	// Points returns an iterator over every cell in the grid in
	// row-major order.
	Points() iter.Seq[geom.Point]
}

// A PositionedGrid is a sized grid with a world position. Its world
// bounds derive from that position, and points translate between
// world space and the grid's own bottom-left-origin local space.
type PositionedGrid interface {
	SizedGrid

	// Pos returns the world position of the grid's bottom left cell.
	Pos() geom.Point

	// WorldBounds returns the rect the grid covers in world space.
	WorldBounds() geom.Rect

	// WorldToLocal translates a world point into grid space.
	WorldToLocal(p geom.Point) geom.Point

	// LocalToWorld translates a grid point into world space.
	LocalToWorld(p geom.Point) geom.Point
}

// gridSize carries the shared sizing behavior of every grid type in
// this package. Grids embed it by value; it is the implementation of
// the SizedGrid methods.
type gridSize geom.Size

func (s gridSize) Size() geom.Size {
	return geom.Size(s)
}

func (s gridSize) Width() int {
	return s.W
}

func (s gridSize) Height() int {
	return s.H
}

func (s gridSize) TileCount() int {
	return s.W * s.H
}

func (s gridSize) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.W && p.Y < s.H
}

func (s gridSize) PointToIndex(p geom.Point) int {
	return p.Y*s.W + p.X
}

func (s gridSize) TryPointToIndex(p geom.Point) (int, bool) {
	if !s.InBounds(p) {
		return 0, false
	}
	return s.PointToIndex(p), true
}

func (s gridSize) IndexToPoint(i int) geom.Point {
	return geom.Pt(i%s.W, i/s.W)
}

func (s gridSize) Bounds() geom.Rect {
	return geom.NewRect(geom.Point{}, geom.Size(s))
}

func (s gridSize) Points() iter.Seq[geom.Point] {
	return s.Bounds().Points()
}

// resolve translates a pivoted point into grid space against this
// grid's size.
func (s gridSize) resolve(pp geom.PivotedPoint) geom.Point {
	return pp.Aligned(geom.Size(s))
}

// PivotPoint returns the cell at the named anchor of the grid.
func (s gridSize) PivotPoint(pivot geom.Pivot) geom.Point {
	return s.Bounds().PivotPoint(pivot)
}
