// Package canvas provides a tiny ASCII canvas for rendering cell
// shapes in tests. The canvas is centered on the origin so that
// origin-constructed shapes draw naturally.
package canvas

import (
	"strings"

	"deedles.dev/xgrid"
	"deedles.dev/xgrid/geom"
)

// A Canvas is an origin-centered rectangular drawing surface.
type Canvas struct {
	bounds geom.Rect
	cells  *xgrid.Grid[rune]
}

// New returns an empty canvas of the given size centered on (0, 0).
func New(size geom.Size) *Canvas {
	return &Canvas{
		bounds: geom.RectOrigin(size),
		cells:  xgrid.NewGrid[rune](size),
	}
}

// Put draws glyph at p. Points outside the canvas are ignored.
func (c *Canvas) Put(p geom.Point, glyph rune) {
	if !c.bounds.Contains(p) {
		return
	}
	c.cells.Set(p.Sub(c.bounds.Min()), glyph)
}

// PutShape draws glyph at every cell of s.
func (c *Canvas) PutShape(s geom.Shape, glyph rune) {
	for p := range s.Points() {
		c.Put(p, glyph)
	}
}

// String renders the canvas with the top row first. Cells that have
// not been drawn render as '.'.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := c.cells.Height() - 1; y >= 0; y-- {
		for x := range c.cells.Width() {
			glyph := c.cells.At(geom.Pt(x, y))
			if glyph == 0 {
				glyph = '.'
			}
			sb.WriteRune(glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
