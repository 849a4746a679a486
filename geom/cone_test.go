package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xgrid/geom"
	"github.com/stretchr/testify/require"
)

func collectSet(s geom.Shape) map[geom.Point]bool {
	set := make(map[geom.Point]bool)
	for p := range s.Points() {
		set[p] = true
	}
	return set
}

func TestConeZeroRange(t *testing.T) {
	c := geom.ConeOrigin(37, 90, 0)
	require.Equal(t, []geom.Point{{0, 0}}, slices.Collect(c.Points()))
}

func TestConeAlongX(t *testing.T) {
	c := geom.ConeOrigin(0, 90, 4)
	cells := collectSet(&c)

	require.True(t, cells[geom.Pt(0, 0)])
	for i := 0; i <= 4; i++ {
		require.True(t, cells[geom.Pt(i, 0)], "missing axis cell (%d, 0)", i)
	}

	// Symmetric about the aim axis.
	for p := range cells {
		require.True(t, cells[geom.Pt(p.X, -p.Y)], "missing mirror of %v", p)
	}

	// Nothing behind the origin.
	for p := range cells {
		require.GreaterOrEqual(t, p.X, 0)
	}
}

func TestConeAlongY(t *testing.T) {
	c := geom.NewCone(geom.Pt(2, 2), 90, 90, 4)
	cells := collectSet(&c)

	for j := 0; j <= 4; j++ {
		require.True(t, cells[geom.Pt(2, 2+j)], "missing axis cell (2, %d)", 2+j)
	}
	for p := range cells {
		require.True(t, cells[geom.Pt(4-p.X, p.Y)], "missing mirror of %v", p)
		require.GreaterOrEqual(t, p.Y, 2)
	}
}

func TestConeNarrowDegeneratesToRay(t *testing.T) {
	// With a sliver of an arc the corners collapse onto the aim line.
	c := geom.ConeOrigin(0, 10, 8)
	var want []geom.Point
	for i := 0; i <= 8; i++ {
		want = append(want, geom.Pt(i, 0))
	}
	require.Equal(t, want, slices.Collect(c.Points()))
}

func TestConeBounds(t *testing.T) {
	c := geom.NewCone(geom.Pt(-3, 5), 225, 60, 6)
	b := (&c).Bounds()
	for p := range c.Points() {
		require.True(t, b.Contains(p))
	}

	corners := c.Corners()
	require.Equal(t, c.Origin, corners[0])
	for _, p := range corners {
		require.True(t, b.Contains(p))
	}
}

func TestConeSetPosTranslates(t *testing.T) {
	a := geom.ConeOrigin(30, 45, 5)
	b := a
	b.SetPos(geom.Pt(7, -2))

	require.Equal(t, geom.Pt(7, -2), b.Origin)
	orig := slices.Collect(a.Points())
	moved := slices.Collect(b.Points())
	require.Len(t, moved, len(orig))
	for i, p := range moved {
		require.Equal(t, orig[i].Add(geom.Pt(7, -2)), p)
	}
}
