package geom

import (
	"iter"
	"math"
)

// A Cone is a triangular wedge of cells: every cell inside the
// triangle spanned by an origin and the two far corners of an arc.
// Direction and arc are stored in radians; 0 points along +X and
// angles increase counter-clockwise.
type Cone struct {
	Origin Point
	Dir    float64
	Arc    float64
	Range  int
}

// NewCone returns the cone at origin pointing along dirDeg degrees,
// spreading arcDeg degrees, reaching rng cells.
func NewCone(origin Point, dirDeg, arcDeg float64, rng int) Cone {
	return Cone{
		Origin: origin,
		Dir:    dirDeg * math.Pi / 180,
		Arc:    arcDeg * math.Pi / 180,
		Range:  rng,
	}
}

// ConeOrigin returns the cone at (0, 0).
func ConeOrigin(dirDeg, arcDeg float64, rng int) Cone {
	return NewCone(Point{}, dirDeg, arcDeg, rng)
}

// Corners returns the three cells spanning the cone's triangle. The
// first is the cone's origin; the other two are the far corners of
// the arc.
func (c Cone) Corners() [3]Point {
	target := c.Origin.Add(PtRound(
		math.Cos(c.Dir)*float64(c.Range),
		math.Sin(c.Dir)*float64(c.Range),
	))

	// Perpendicular to the aim direction, scaled out to the arc's
	// half angle.
	dir := target.Sub(c.Origin)
	scale := math.Tan(c.Arc / 2)
	v := Point{
		int(float64(-dir.Y) * scale),
		int(float64(dir.X) * scale),
	}

	return [3]Point{c.Origin, target.Add(v), target.Sub(v)}
}

// Points returns an iterator over the cone's cells: the cells of the
// triangle's bounding box that pass a same-sign cross product test
// against all three edges. Cells exactly on an edge are included. A
// range of 0 yields only the origin cell.
func (c Cone) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		tri := c.Corners()
		box := RectFromPoints(
			tri[0].Min(tri[1]).Min(tri[2]),
			tri[0].Max(tri[1]).Max(tri[2]),
		)
		for p := range box.Points() {
			if pointInTriangle(p, tri) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Pos returns the cone's origin.
func (c *Cone) Pos() Point {
	return c.Origin
}

// SetPos moves the cone's origin to pos.
func (c *Cone) SetPos(pos Point) {
	c.Origin = pos
}

// Bounds returns the smallest rect containing the cone.
func (c *Cone) Bounds() Rect {
	tri := c.Corners()
	return RectFromPoints(
		tri[0].Min(tri[1]).Min(tri[2]),
		tri[0].Max(tri[1]).Max(tri[2]),
	)
}

func cross(p, a, b Point) int {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// pointInTriangle reports whether p lies inside the triangle,
// counting points exactly on an edge as inside.
// https://stackoverflow.com/a/2049593
func pointInTriangle(p Point, tri [3]Point) bool {
	d1 := cross(p, tri[0], tri[1])
	d2 := cross(p, tri[1], tri[2])
	d3 := cross(p, tri[2], tri[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
