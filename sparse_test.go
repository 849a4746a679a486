package xgrid_test

import (
	"slices"
	"testing"

	"deedles.dev/xgrid"
	"deedles.dev/xgrid/geom"
	"github.com/stretchr/testify/require"
)

func TestSparseGridBasics(t *testing.T) {
	g := xgrid.NewSparseGrid[string](geom.Sz(10, 10))
	require.True(t, g.IsEmpty())

	g.Set(geom.Pt(3, 4), "a")
	g.Set(geom.Pt(0, 0), "b")
	require.Equal(t, 2, g.Len())
	require.False(t, g.IsEmpty())

	v, ok := g.At(geom.Pt(3, 4))
	require.True(t, ok)
	require.Equal(t, "a", v)

	// Unoccupied and out-of-bounds cells both report absence.
	_, ok = g.At(geom.Pt(5, 5))
	require.False(t, ok)
	_, ok = g.At(geom.Pt(-1, 2))
	require.False(t, ok)

	g.Delete(geom.Pt(3, 4))
	_, ok = g.At(geom.Pt(3, 4))
	require.False(t, ok)
	require.Equal(t, 1, g.Len())

	g.Delete(geom.Pt(99, 99))
	require.Equal(t, 1, g.Len())

	g.Clear()
	require.True(t, g.IsEmpty())
}

func TestSparseGridOverwrite(t *testing.T) {
	g := xgrid.NewSparseGrid[int](geom.Sz(4, 4))
	g.Set(geom.Pt(1, 1), 1)
	g.Set(geom.Pt(1, 1), 2)
	require.Equal(t, 1, g.Len())

	v, ok := g.At(geom.Pt(1, 1))
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestSparseGridDeterministicOrder(t *testing.T) {
	g := xgrid.NewSparseGrid[int](geom.Sz(5, 5))
	g.Set(geom.Pt(4, 4), 3)
	g.Set(geom.Pt(0, 0), 1)
	g.Set(geom.Pt(2, 1), 2)

	var cells []geom.Point
	for p, v := range g.Cells() {
		cells = append(cells, p)
		require.Equal(t, len(cells), v)
	}
	require.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 4}}, cells)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(g.Values()))
}

func TestSparseGridPivoted(t *testing.T) {
	g := xgrid.NewSparseGrid[int](geom.Sz(10, 10))
	g.SetPivoted(geom.Pt(0, 0).Pivot(geom.PivotTopRight), 7)

	v, ok := g.At(geom.Pt(9, 9))
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestSparseGridRows(t *testing.T) {
	g := xgrid.NewSparseGrid[rune](geom.Sz(10, 5))

	g.InsertRow(2, slices.Values([]rune("hi")))
	require.Equal(t, 2, g.Len())
	v, ok := g.At(geom.Pt(1, 2))
	require.True(t, ok)
	require.Equal(t, 'i', v)

	// Writes stop at the right edge.
	g.InsertRowAt(geom.Pt(9, 0), slices.Values([]rune("hi")))
	v, ok = g.At(geom.Pt(9, 0))
	require.True(t, ok)
	require.Equal(t, 'h', v)
	require.Equal(t, 3, g.Len())
}

func TestSparseGridColumns(t *testing.T) {
	g := xgrid.NewSparseGrid[rune](geom.Sz(5, 5))

	g.InsertColumnAt(geom.Pt(2, 3), slices.Values([]rune("hello")))
	require.Equal(t, 2, g.Len())

	v, ok := g.At(geom.Pt(2, 4))
	require.True(t, ok)
	require.Equal(t, 'e', v)
}
