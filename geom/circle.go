package geom

// Circle drawing on a grid, after
// https://www.redblobgames.com/grids/circle-drawing/

import (
	"iter"
	"math"
)

// A Circle is a filled circle of cells around a center cell. A cell
// belongs to the circle when the distance between its center and the
// circle's center is at most Radius+0.5; the half-cell bias keeps the
// boundary symmetric for both even and odd radii.
type Circle struct {
	Center Point
	Radius int
}

// NewCircle returns the filled circle around center.
func NewCircle(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// CircleOrigin returns the filled circle around (0, 0).
func CircleOrigin(radius int) Circle {
	return Circle{Radius: radius}
}

// Outline returns the outline of this circle.
func (c Circle) Outline() CircleOutline {
	return CircleOutline{Center: c.Center, Radius: c.Radius}
}

// Points returns an iterator over the circle's cells. The bounding
// square is walked in row-major order and cells outside the boundary
// test are skipped, so the sequence is duplicate free. A radius of 0
// yields only the center cell.
func (c Circle) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cx := float64(c.Center.X) + 0.5
		cy := float64(c.Center.Y) + 0.5
		r := float64(c.Radius) + 0.5

		box := RectCentered(c.Center, Square(2*c.Radius+1))
		for p := range box.Points() {
			dx := cx - (float64(p.X) + 0.5)
			dy := cy - (float64(p.Y) + 0.5)
			if dx*dx+dy*dy <= r*r {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Pos returns the circle's center.
func (c *Circle) Pos() Point {
	return c.Center
}

// SetPos moves the circle's center to pos.
func (c *Circle) SetPos(pos Point) {
	c.Center = pos
}

// Bounds returns the smallest rect containing the circle.
func (c *Circle) Bounds() Rect {
	return RectCentered(c.Center, Square(2*c.Radius+1))
}

// A CircleOutline is the one-cell-thick boundary of a Circle.
type CircleOutline struct {
	Center Point
	Radius int
}

// NewCircleOutline returns the circle outline around center.
func NewCircleOutline(center Point, radius int) CircleOutline {
	return CircleOutline{Center: center, Radius: radius}
}

// CircleOutlineOrigin returns the circle outline around (0, 0).
func CircleOutlineOrigin(radius int) CircleOutline {
	return CircleOutline{Radius: radius}
}

// Filled returns the filled circle with this outline's center and
// radius.
func (c CircleOutline) Filled() Circle {
	return Circle{Center: c.Center, Radius: c.Radius}
}

// Points returns an iterator over the outline's cells using the
// midpoint circle algorithm: one octant is computed and reflected
// eight ways around the center. Cells on the diagonal octant
// boundaries are yielded twice, once from each reflection; callers
// that need a set must deduplicate.
func (c CircleOutline) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		radius := float64(c.Radius) + 0.5
		end := int(radius * math.Sqrt(0.5))

		for r := 0; r <= end; r++ {
			d := int(math.Sqrt(radius*radius - float64(r*r)))
			for _, p := range [8]Point{
				{-d, r},
				{d, r},
				{-d, -r},
				{d, -r},
				{r, -d},
				{r, d},
				{-r, -d},
				{-r, d},
			} {
				if !yield(c.Center.Add(p)) {
					return
				}
			}
		}
	}
}

// Pos returns the outline's center.
func (c *CircleOutline) Pos() Point {
	return c.Center
}

// SetPos moves the outline's center to pos.
func (c *CircleOutline) SetPos(pos Point) {
	c.Center = pos
}

// Bounds returns the smallest rect containing the outline.
func (c *CircleOutline) Bounds() Rect {
	return RectCentered(c.Center, Square(2*c.Radius+1))
}
