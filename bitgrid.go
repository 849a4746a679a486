package xgrid

import (
	"math/bits"
	"strings"

	"deedles.dev/xgrid/geom"
)

// A BitGrid is a grid of boolean state packed into machine words,
// for cheaply tracking simple per-cell flags (visibility, collision,
// dirtiness) across large grids.
type BitGrid struct {
	gridSize
	words []uint64
}

// NewBitGrid returns a bit grid of the given size with every bit
// unset.
func NewBitGrid(size geom.Size) *BitGrid {
	return &BitGrid{
		gridSize: gridSize(size),
		words:    make([]uint64, (size.Count()+63)/64),
	}
}

// WithValue sets every bit to value and returns the grid, for
// chaining off NewBitGrid.
func (g *BitGrid) WithValue(value bool) *BitGrid {
	g.SetAll(value)
	return g
}

// At returns the bit at cell p. The cell must be in bounds.
func (g *BitGrid) At(p geom.Point) bool {
	return g.AtIndex(g.PointToIndex(p))
}

// TryAt returns the bit at cell p, reporting false in the second
// result when p is out of bounds.
func (g *BitGrid) TryAt(p geom.Point) (bit, ok bool) {
	i, ok := g.TryPointToIndex(p)
	if !ok {
		return false, false
	}
	return g.AtIndex(i), true
}

// AtIndex returns the bit at the given linear index.
func (g *BitGrid) AtIndex(i int) bool {
	return g.words[i/64]&(1<<(i%64)) != 0
}

// Set sets the bit at cell p. The cell must be in bounds.
func (g *BitGrid) Set(p geom.Point, value bool) {
	g.SetIndex(g.PointToIndex(p), value)
}

// SetIndex sets the bit at the given linear index.
func (g *BitGrid) SetIndex(i int, value bool) {
	if value {
		g.words[i/64] |= 1 << (i % 64)
	} else {
		g.words[i/64] &^= 1 << (i % 64)
	}
}

// Toggle flips the bit at cell p.
func (g *BitGrid) Toggle(p geom.Point) {
	i := g.PointToIndex(p)
	g.words[i/64] ^= 1 << (i % 64)
}

// SetAll sets every bit to value.
func (g *BitGrid) SetAll(value bool) {
	var w uint64
	if value {
		w = ^uint64(0)
	}
	for i := range g.words {
		g.words[i] = w
	}
	g.clearTail()
}

// Clear unsets every bit.
func (g *BitGrid) Clear() {
	g.SetAll(false)
}

// Negate flips every bit.
func (g *BitGrid) Negate() {
	for i := range g.words {
		g.words[i] = ^g.words[i]
	}
	g.clearTail()
}

// Any reports whether at least one bit is set.
func (g *BitGrid) Any() bool {
	for _, w := range g.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bits are set.
func (g *BitGrid) None() bool {
	return !g.Any()
}

// OnesCount returns the number of set bits.
func (g *BitGrid) OnesCount() int {
	var n int
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// clearTail unsets the word bits past the grid's last cell so that
// Any and OnesCount only see real cells.
func (g *BitGrid) clearTail() {
	if tail := g.TileCount() % 64; tail != 0 && len(g.words) > 0 {
		g.words[len(g.words)-1] &= (1 << tail) - 1
	}
}

// String renders the grid with the top row first, one character per
// cell: '1' for set bits and '0' for unset ones.
func (g *BitGrid) String() string {
	var sb strings.Builder
	for y := g.H - 1; y >= 0; y-- {
		for x := range g.W {
			if g.At(geom.Pt(x, y)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
