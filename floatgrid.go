package xgrid

import (
	"iter"

	"deedles.dev/xgrid/geom"
)

// A FloatGrid is a dense grid of float64 values with helpers for
// applying operations across the whole grid. It is the companion
// container for weight maps and distance fields.
type FloatGrid struct {
	gridSize
	data []float64
}

// NewFloatGrid returns a float grid of the given size with every
// value set to 0.
func NewFloatGrid(size geom.Size) *FloatGrid {
	return &FloatGrid{
		gridSize: gridSize(size),
		data:     make([]float64, size.Count()),
	}
}

// Value returns the value at cell p. The cell must be in bounds.
func (g *FloatGrid) Value(p geom.Point) float64 {
	return g.data[g.PointToIndex(p)]
}

// TryValue returns the value at cell p, reporting false when p is
// out of bounds.
func (g *FloatGrid) TryValue(p geom.Point) (float64, bool) {
	i, ok := g.TryPointToIndex(p)
	if !ok {
		return 0, false
	}
	return g.data[i], true
}

// SetValue sets the value at cell p. The cell must be in bounds.
func (g *FloatGrid) SetValue(p geom.Point, value float64) {
	g.data[g.PointToIndex(p)] = value
}

// SetAll sets every value in the grid.
func (g *FloatGrid) SetAll(value float64) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Clear resets every value to 0.
func (g *FloatGrid) Clear() {
	g.SetAll(0)
}

// Values returns the grid's backing slice in row-major order.
func (g *FloatGrid) Values() []float64 {
	return g.data
}

// Apply applies op to every value in the grid.
func (g *FloatGrid) Apply(op func(float64) float64) {
	for i, v := range g.data {
		g.data[i] = op(v)
	}
}

// Cells returns an iterator over every cell and its value in
// row-major order.
func (g *FloatGrid) Cells() iter.Seq2[geom.Point, float64] {
	return func(yield func(geom.Point, float64) bool) {
		for i, v := range g.data {
			if !yield(g.IndexToPoint(i), v) {
				return
			}
		}
	}
}

// RectValues returns an iterator over the values of r, clipped to
// the grid's bounds, in row-major order.
func (g *FloatGrid) RectValues(r geom.Rect) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for p := range r.Clipped(g.Bounds()).Points() {
			if !yield(g.Value(p)) {
				return
			}
		}
	}
}
