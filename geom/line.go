package geom

// Line drawing on a grid, after
// https://www.redblobgames.com/grids/line-drawing.html

import "iter"

// A Line is a diagonal-capable line segment between two cells. Both
// endpoints are included.
type Line struct {
	Start, End Point
}

// NewLine returns the line from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// LineTo returns the line from (0, 0) to end.
func LineTo(end Point) Line {
	return Line{End: end}
}

// Points returns an iterator over the line's cells from Start to
// End. The walk samples max(|dx|, |dy|)+1 evenly spaced positions
// along the segment and yields the nearest cell to each, so the path
// is connected, has no duplicates, and always includes both
// endpoints.
func (l Line) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		d := l.End.Sub(l.Start).Abs()
		steps := max(d.X, d.Y)
		if steps == 0 {
			yield(l.Start)
			return
		}
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			if !yield(lerpPoint(l.Start, l.End, t)) {
				return
			}
		}
	}
}

// Pos returns the line's start point.
func (l *Line) Pos() Point {
	return l.Start
}

// SetPos moves the line's start point to pos, keeping its length and
// direction.
func (l *Line) SetPos(pos Point) {
	l.End = pos.Add(l.End.Sub(l.Start))
	l.Start = pos
}

// Bounds returns the smallest rect containing the line.
func (l *Line) Bounds() Rect {
	return RectFromPoints(l.Start, l.End)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpPoint(a, b Point, t float64) Point {
	return PtRound(
		lerp(float64(a.X), float64(b.X), t),
		lerp(float64(a.Y), float64(b.Y), t),
	)
}

// A LineOrtho is a 4-connected line segment between two cells: the
// walk only ever steps along one axis at a time, never diagonally.
type LineOrtho struct {
	Start, End Point
}

// NewLineOrtho returns the orthogonal line from start to end.
func NewLineOrtho(start, end Point) LineOrtho {
	return LineOrtho{Start: start, End: end}
}

// LineOrthoTo returns the orthogonal line from (0, 0) to end.
func LineOrthoTo(end Point) LineOrtho {
	return LineOrtho{End: end}
}

// Points returns an iterator over the line's cells from Start to
// End. The walk takes |dx|+|dy| unit steps, at each one advancing
// whichever axis has made less proportional progress; ties advance
// the y axis. The first cell yielded is always Start.
func (l LineOrtho) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(l.Start) {
			return
		}
		d := l.End.Sub(l.Start)
		nx, ny := float64(abs(d.X)), float64(abs(d.Y))
		sx, sy := sign(d.X), sign(d.Y)

		cur := l.Start
		var ix, iy float64
		for ix+iy < nx+ny {
			// A zero-length axis compares as +Inf and never wins.
			if (ix+0.5)/nx < (iy+0.5)/ny {
				cur.X += sx
				ix++
			} else {
				cur.Y += sy
				iy++
			}
			if !yield(cur) {
				return
			}
		}
	}
}

// Pos returns the line's start point.
func (l *LineOrtho) Pos() Point {
	return l.Start
}

// SetPos moves the line's start point to pos, keeping its length and
// direction.
func (l *LineOrtho) SetPos(pos Point) {
	l.End = pos.Add(l.End.Sub(l.Start))
	l.Start = pos
}

// Bounds returns the smallest rect containing the line.
func (l *LineOrtho) Bounds() Rect {
	return RectFromPoints(l.Start, l.End)
}
