package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/xgrid/geom"
	"github.com/stretchr/testify/require"
)

func TestRectFromPoints(t *testing.T) {
	r := geom.RectFromPoints(geom.Pt(1, 1), geom.Pt(3, 3))
	require.Equal(t, geom.Pt(1, 1), r.Min())
	require.Equal(t, geom.Pt(3, 3), r.Max())
	require.Equal(t, geom.Sz(3, 3), r.Size)

	swapped := geom.RectFromPoints(geom.Pt(3, 3), geom.Pt(1, 1))
	require.Equal(t, r, swapped)

	unit := geom.RectFromPoints(geom.Pt(5, -2), geom.Pt(5, -2))
	require.Equal(t, geom.Sz(1, 1), unit.Size)
	require.Equal(t, geom.Pt(5, -2), unit.Min())
}

func TestRectOriginIsCentered(t *testing.T) {
	r := geom.RectOrigin(geom.Sz(5, 5))
	require.True(t, r.Contains(geom.Pt(-2, -2)))
	require.True(t, r.Contains(geom.Pt(2, 2)))
	require.False(t, r.Contains(geom.Pt(3, 3)))
	require.Equal(t, geom.Point{}, r.Center())
}

func TestRectCenteredRoundTrip(t *testing.T) {
	c := geom.Pt(3, -7)
	for w := 1; w <= 6; w++ {
		for h := 1; h <= 6; h++ {
			r := geom.RectCentered(c, geom.Sz(w, h))
			require.Equal(t, c, r.Center(), "size %dx%d", w, h)
			require.Equal(t, geom.Sz(w, h), r.Size)
		}
	}
}

func TestRectContainsExtremes(t *testing.T) {
	rects := []geom.Rect{
		geom.NewRect(geom.Pt(0, 0), geom.Sz(1, 1)),
		geom.NewRect(geom.Pt(-4, 2), geom.Sz(7, 3)),
		geom.RectOrigin(geom.Sz(6, 4)),
	}
	for _, r := range rects {
		require.True(t, r.Contains(r.Min()))
		require.True(t, r.Contains(r.Max()))
		require.False(t, r.Contains(r.Min().Sub(geom.Pt(1, 0))))
		require.False(t, r.Contains(r.Max().Add(geom.Pt(0, 1))))
	}
}

func TestRectOverlaps(t *testing.T) {
	a := geom.NewRect(geom.Pt(0, 0), geom.Sz(4, 4))
	b := geom.NewRect(geom.Pt(3, 3), geom.Sz(4, 4))
	c := geom.NewRect(geom.Pt(4, 0), geom.Sz(2, 2))

	require.True(t, a.Overlaps(a))
	require.True(t, a.Overlaps(b))
	require.Equal(t, a.Overlaps(b), b.Overlaps(a))
	require.False(t, a.Overlaps(c))
	require.Equal(t, a.Overlaps(c), c.Overlaps(a))

	empty := geom.NewRect(geom.Pt(1, 1), geom.Sz(0, 3))
	require.False(t, a.Overlaps(empty))
	require.False(t, empty.Overlaps(empty))
}

func TestRectContainsRect(t *testing.T) {
	outer := geom.NewRect(geom.Pt(0, 0), geom.Sz(10, 10))
	require.True(t, outer.ContainsRect(outer))
	require.True(t, outer.ContainsRect(geom.NewRect(geom.Pt(2, 3), geom.Sz(4, 4))))
	require.False(t, outer.ContainsRect(geom.NewRect(geom.Pt(8, 8), geom.Sz(4, 4))))
}

func TestRectClipped(t *testing.T) {
	a := geom.NewRect(geom.Pt(0, 0), geom.Sz(6, 6))
	b := geom.NewRect(geom.Pt(4, 4), geom.Sz(6, 6))

	clip := a.Clipped(b)
	require.Equal(t, geom.Pt(4, 4), clip.Min())
	require.Equal(t, geom.Pt(5, 5), clip.Max())

	// Clipping is idempotent.
	require.Equal(t, clip, clip.Clipped(b))

	// Disjoint rects clip to an empty region that iterates no cells.
	far := geom.NewRect(geom.Pt(100, 100), geom.Sz(3, 3))
	empty := a.Clipped(far)
	require.True(t, empty.IsEmpty())
	require.Empty(t, slices.Collect(empty.Points()))
	require.Equal(t, empty, empty.Clipped(far))
}

func TestRectEnvelope(t *testing.T) {
	r := geom.NewRect(geom.Pt(0, 0), geom.Sz(2, 2))

	grown := r.EnvelopePoint(geom.Pt(4, -1))
	require.True(t, grown.Contains(geom.Pt(4, -1)))
	require.True(t, grown.ContainsRect(r))

	same := r.EnvelopePoint(geom.Pt(1, 1))
	require.Equal(t, r, same)

	merged := r.Merge(geom.NewRect(geom.Pt(5, 5), geom.Sz(2, 2)))
	require.True(t, merged.ContainsRect(r))
	require.True(t, merged.Contains(geom.Pt(6, 6)))
}

func TestRectCorners(t *testing.T) {
	r := geom.NewRect(geom.Pt(1, 2), geom.Sz(4, 3))
	require.Equal(t, [4]geom.Point{
		{1, 2},
		{1, 4},
		{4, 4},
		{4, 2},
	}, r.Corners())
}

func TestRectPivotPoint(t *testing.T) {
	r := geom.NewRect(geom.Pt(1, 2), geom.Sz(4, 3))
	corners := r.Corners()

	require.Equal(t, corners[0], r.PivotPoint(geom.PivotBottomLeft))
	require.Equal(t, corners[1], r.PivotPoint(geom.PivotTopLeft))
	require.Equal(t, corners[2], r.PivotPoint(geom.PivotTopRight))
	require.Equal(t, corners[3], r.PivotPoint(geom.PivotBottomRight))
	require.Equal(t, r.Center(), r.PivotPoint(geom.PivotCenter))
}

func TestRectPointsCount(t *testing.T) {
	for _, size := range []geom.Size{
		{1, 1}, {3, 3}, {4, 2}, {1, 7}, {6, 1}, {0, 5}, {5, 0},
	} {
		r := geom.NewRect(geom.Pt(-2, 3), size)
		require.Len(t, slices.Collect(r.Points()), size.Count(), "size %v", size)
	}
}

func TestRectPointsOrder(t *testing.T) {
	r := geom.NewRect(geom.Pt(1, 1), geom.Sz(3, 2))
	require.Equal(t, []geom.Point{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {2, 2}, {3, 2},
	}, slices.Collect(r.Points()))
}

func TestRectPointsBack(t *testing.T) {
	r := geom.NewRect(geom.Pt(-1, -1), geom.Sz(4, 3))

	forward := slices.Collect(r.Points())
	backward := slices.Collect(r.PointsBack())

	slices.Reverse(backward)
	require.Equal(t, forward, backward)
}

func TestRectIterInterleaved(t *testing.T) {
	r := geom.NewRect(geom.Pt(0, 0), geom.Sz(3, 3))
	it := r.Iter()
	require.Equal(t, 9, it.Len())

	var got []geom.Point
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, p)

		p, ok = it.NextBack()
		if !ok {
			break
		}
		got = append(got, p)
	}

	require.Equal(t, 0, it.Len())
	require.Len(t, got, 9)

	slices.SortFunc(got, func(a, b geom.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	require.Equal(t, slices.Collect(r.Points()), got)

	// Both ends stay exhausted.
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.NextBack()
	require.False(t, ok)
}

func TestRectIterEmpty(t *testing.T) {
	it := geom.NewRect(geom.Pt(3, 3), geom.Sz(0, 4)).Iter()
	require.Equal(t, 0, it.Len())
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.NextBack()
	require.False(t, ok)
}

func TestRectBorderCount(t *testing.T) {
	for _, tt := range []struct {
		size geom.Size
		want int
	}{
		{geom.Sz(1, 1), 1},
		{geom.Sz(1, 5), 5},
		{geom.Sz(5, 1), 5},
		{geom.Sz(2, 2), 4},
		{geom.Sz(4, 3), 10},
		{geom.Sz(7, 7), 24},
	} {
		r := geom.NewRect(geom.Pt(-3, 2), tt.size)
		border := slices.Collect(r.Border())
		require.Len(t, border, tt.want, "size %v", tt.size)

		// Every border cell exactly once.
		seen := make(map[geom.Point]bool)
		for _, p := range border {
			require.False(t, seen[p], "duplicate %v for size %v", p, tt.size)
			seen[p] = true
			require.True(t, r.Contains(p))
		}
	}
}

func TestRectBorderWalk(t *testing.T) {
	r := geom.NewRect(geom.Pt(0, 0), geom.Sz(3, 3))
	require.Equal(t, []geom.Point{
		{0, 0}, {0, 1}, {0, 2},
		{1, 2}, {2, 2},
		{2, 1}, {2, 0},
		{1, 0},
	}, slices.Collect(r.Border()))
}

func TestRectTranslated(t *testing.T) {
	r := geom.NewRect(geom.Pt(1, 1), geom.Sz(2, 2))
	moved := r.Translated(geom.Pt(-3, 4))
	require.Equal(t, geom.Pt(-2, 5), moved.Min())
	require.Equal(t, r.Size, moved.Size)
}
