package geom

import "iter"

// A Diamond is a filled diamond of cells: every cell whose taxicab
// distance from the center is at most Radius.
type Diamond struct {
	Center Point
	Radius int
}

// NewDiamond returns the filled diamond around center.
func NewDiamond(center Point, radius int) Diamond {
	return Diamond{Center: center, Radius: radius}
}

// DiamondOrigin returns the filled diamond around (0, 0).
func DiamondOrigin(radius int) Diamond {
	return Diamond{Radius: radius}
}

var diamondWalk = [4]Point{DownRight, DownLeft, UpLeft, UpRight}

// Points returns an iterator over the diamond's cells as a series of
// expanding rings. Ring 0 is the center alone; ring k starts k cells
// directly above the center and walks the four diagonal directions k
// steps each, for exactly 4k cells.
func (d Diamond) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(d.Center) {
			return
		}
		for k := 1; k <= d.Radius; k++ {
			p := d.Center.Add(Up.Mul(k))
			if !yield(p) {
				return
			}
			// The final step would land back on the ring's start.
			steps := 4*k - 1
			for i := range steps {
				p = p.Add(diamondWalk[i/k])
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Pos returns the diamond's center.
func (d *Diamond) Pos() Point {
	return d.Center
}

// SetPos moves the diamond's center to pos.
func (d *Diamond) SetPos(pos Point) {
	d.Center = pos
}

// Bounds returns the smallest rect containing the diamond.
func (d *Diamond) Bounds() Rect {
	return RectCentered(d.Center, Square(2*d.Radius+1))
}
