package xgrid_test

import (
	"slices"
	"testing"

	"deedles.dev/xgrid"
	"deedles.dev/xgrid/geom"
	"github.com/stretchr/testify/require"
)

func TestFloatGridBasics(t *testing.T) {
	g := xgrid.NewFloatGrid(geom.Sz(4, 4))
	require.Equal(t, 0.0, g.Value(geom.Pt(2, 2)))

	g.SetValue(geom.Pt(2, 2), 1.5)
	require.Equal(t, 1.5, g.Value(geom.Pt(2, 2)))

	v, ok := g.TryValue(geom.Pt(2, 2))
	require.True(t, ok)
	require.Equal(t, 1.5, v)

	_, ok = g.TryValue(geom.Pt(4, 0))
	require.False(t, ok)
}

func TestFloatGridSetAll(t *testing.T) {
	g := xgrid.NewFloatGrid(geom.Sz(3, 3))
	g.SetAll(2.5)
	for _, v := range g.Values() {
		require.Equal(t, 2.5, v)
	}

	g.Clear()
	for _, v := range g.Values() {
		require.Equal(t, 0.0, v)
	}
}

func TestFloatGridApply(t *testing.T) {
	g := xgrid.NewFloatGrid(geom.Sz(2, 2))
	g.SetAll(3)
	g.Apply(func(v float64) float64 { return v * 2 })

	for p, v := range g.Cells() {
		require.Equal(t, 6.0, v, "%v", p)
	}
}

func TestFloatGridRectValues(t *testing.T) {
	g := xgrid.NewFloatGrid(geom.Sz(5, 5))
	g.SetAll(1)

	var sum float64
	for v := range g.RectValues(geom.NewRect(geom.Pt(1, 1), geom.Sz(3, 2))) {
		sum += v
	}
	require.Equal(t, 6.0, sum)

	// Rects clip to the grid.
	count := len(slices.Collect(g.RectValues(geom.NewRect(geom.Pt(3, 3), geom.Sz(10, 10)))))
	require.Equal(t, 4, count)
}
