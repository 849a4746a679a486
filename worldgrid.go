package xgrid

import (
	"deedles.dev/xgrid/geom"
)

// A WorldGrid is a dense grid with a position in world space. Local
// grid cells run from (0, 0) to the grid's size; world cells run
// from the grid's position to its far corner. A world point's local
// equivalent is its offset from the grid's minimum corner.
type WorldGrid[T any] struct {
	*Grid[T]
	pos geom.Point
}

var _ PositionedGrid = (*WorldGrid[int])(nil)

// NewWorldGrid returns a world grid of the given size whose bottom
// left cell sits at pos.
func NewWorldGrid[T any](pos geom.Point, size geom.Size) *WorldGrid[T] {
	return &WorldGrid[T]{
		Grid: NewGrid[T](size),
		pos:  pos,
	}
}

// NewWorldGridCentered returns a world grid of the given size whose
// center cell sits at center.
func NewWorldGridCentered[T any](center geom.Point, size geom.Size) *WorldGrid[T] {
	return &WorldGrid[T]{
		Grid: NewGrid[T](size),
		pos:  geom.RectCentered(center, size).Min(),
	}
}

// Pos returns the world position of the grid's bottom left cell.
func (g *WorldGrid[T]) Pos() geom.Point {
	return g.pos
}

// SetPos moves the grid in world space without touching its cells.
func (g *WorldGrid[T]) SetPos(pos geom.Point) {
	g.pos = pos
}

// WorldBounds returns the rect the grid covers in world space.
func (g *WorldGrid[T]) WorldBounds() geom.Rect {
	return geom.NewRect(g.pos, g.Size())
}

// Min returns the world position of the grid's bottom left cell.
func (g *WorldGrid[T]) Min() geom.Point {
	return g.pos
}

// Max returns the world position of the grid's top right cell.
func (g *WorldGrid[T]) Max() geom.Point {
	return g.WorldBounds().Max()
}

// Center returns the world position of the grid's center cell,
// truncating toward the bottom left for even sizes.
func (g *WorldGrid[T]) Center() geom.Point {
	return g.WorldBounds().Center()
}

// Left returns the world x coordinate of the grid's leftmost column.
func (g *WorldGrid[T]) Left() int {
	return g.WorldBounds().Left()
}

// Right returns the world x coordinate of the grid's rightmost
// column.
func (g *WorldGrid[T]) Right() int {
	return g.WorldBounds().Right()
}

// Bottom returns the world y coordinate of the grid's bottom row.
func (g *WorldGrid[T]) Bottom() int {
	return g.WorldBounds().Bottom()
}

// Top returns the world y coordinate of the grid's top row.
func (g *WorldGrid[T]) Top() int {
	return g.WorldBounds().Top()
}

// WorldPivotPoint returns the world position of the named anchor on
// the grid.
func (g *WorldGrid[T]) WorldPivotPoint(pivot geom.Pivot) geom.Point {
	return g.WorldBounds().PivotPoint(pivot)
}

// WorldToLocal translates a world point into grid space.
func (g *WorldGrid[T]) WorldToLocal(p geom.Point) geom.Point {
	return p.Sub(g.pos)
}

// LocalToWorld translates a grid point into world space.
func (g *WorldGrid[T]) LocalToWorld(p geom.Point) geom.Point {
	return p.Add(g.pos)
}

// InWorldBounds reports whether the world point p is one of the
// grid's cells.
func (g *WorldGrid[T]) InWorldBounds(p geom.Point) bool {
	return g.WorldBounds().Contains(p)
}

// AtWorld returns the value at the world point p. The point must be
// in bounds; use TryAtWorld for the checked variant.
func (g *WorldGrid[T]) AtWorld(p geom.Point) T {
	return g.At(g.WorldToLocal(p))
}

// TryAtWorld returns the value at the world point p, reporting false
// when p is outside the grid.
func (g *WorldGrid[T]) TryAtWorld(p geom.Point) (T, bool) {
	return g.TryAt(g.WorldToLocal(p))
}

// SetWorld sets the value at the world point p. The point must be in
// bounds.
func (g *WorldGrid[T]) SetWorld(p geom.Point, value T) {
	g.Set(g.WorldToLocal(p), value)
}
