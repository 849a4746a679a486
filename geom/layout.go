package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// hsplit splits a rect into two rects arranged horizontally, the left
// one w columns wide.
func hsplit(r Rect, w int) (left, right Rect) {
	left = NewRect(r.Origin, Sz(w, r.Size.H))
	right = NewRect(r.Origin.Add(Pt(w, 0)), Sz(r.Size.W-w, r.Size.H))
	return left, right
}

func hsplitHalf(r Rect) (left, right Rect) {
	return hsplit(r, r.Size.W/2)
}

// vsplit splits a rect into two rects arranged vertically, the top
// one h rows tall.
func vsplit(r Rect, h int) (top, bottom Rect) {
	top = NewRect(r.Origin.Add(Pt(0, r.Size.H-h)), Sz(r.Size.W, h))
	bottom = NewRect(r.Origin, Sz(r.Size.W, r.Size.H-h))
	return top, bottom
}

func vsplitHalf(r Rect) (top, bottom Rect) {
	return vsplit(r, r.Size.H/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rects that recursively split each
// section halfway to the right and then downwards. In other words,
//
//	tiles := make([]geom.Rect, 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		split, next := hsplitHalf, vsplitHalf

		c, n := split(r)
		for range numtiles - 1 {
			if !yield(c) {
				return
			}

			c, n = split(n)
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rects where the first is two-thirds
// the width of r and the rest are arranged vertically in an even
// split in the remaining space.
func TileTwoThirdsSidebar(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rects from an iterator instead of
// inserting them into a slice.
func TiledTwoThirdsSidebar(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		first, rem := hsplit(r, 2*r.Size.W/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rects that comprise an even,
// vertical splitting of r, from the top downwards. In other words,
//
//	tiles := make([]geom.Rect, 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. Asking for no tiles yields
// nothing.
func TiledEvenVertically(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}
		h := r.Size.H / numtiles
		c, _ := vsplit(r, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translated(Pt(0, -h))
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rects that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect, 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

func TiledEvenHorizontally(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		if numtiles <= 0 {
			return
		}
		w := r.Size.W / numtiles
		c, _ := hsplit(r, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translated(Pt(w, 0))
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows(tiles []Rect, r Rect, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows(numtiles int, r Rect, cols int) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rect provided and
// then identical copies shifted downwards by its height repeatedly,
// thus producing an infinite vertical stack of rects below the first.
func VerticalStack(first Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		shift := Pt(0, -first.Size.H)
		for {
			if !yield(first) {
				return
			}
			first = first.Translated(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rects of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack(rects []Rect) {
	if len(rects) <= 1 {
		return
	}

	w := 0
	for _, r := range rects {
		w = max(w, r.Size.W)
	}

	prev := rects[0]
	prev.Size.W = w
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = NewRect(
			Pt(prev.Origin.X, prev.Origin.Y-rects[i].Size.H),
			Sz(w, rects[i].Size.H),
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rect as necessary if
// opposite edges are specified.
func Align(outer, inner Rect, edges Edges) Rect {
	inner = RectCentered(outer.Center(), inner.Size)
	switch {
	case edges&EdgeTop != 0:
		inner.Origin.Y = outer.Top() - inner.Size.H + 1
		if edges&EdgeBottom != 0 {
			inner.Origin.Y = outer.Bottom()
			inner.Size.H = outer.Size.H
		}
	case edges&EdgeBottom != 0:
		inner.Origin.Y = outer.Bottom()
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Origin.X = outer.Left()
		if edges&EdgeRight != 0 {
			inner.Size.W = outer.Size.W
		}
	case edges&EdgeRight != 0:
		inner.Origin.X = outer.Right() - inner.Size.W + 1
	}

	return inner
}

func insertTilesFromSeq(tiles []Rect, s iter.Seq[Rect]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
