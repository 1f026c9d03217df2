package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/geom"
)

func TestRectAddPoint1x1(t *testing.T) {
	var r geom.Rect
	r = r.AddPoint(geom.PointI32{X: 0, Y: 0})
	require.Equal(t, geom.Rect{Left: 0, Top: 0, Right: 1, Bottom: 1}, r)
}

func TestRectAddPoint2x2(t *testing.T) {
	var r geom.Rect
	r = r.AddPoint(geom.PointI32{X: 1, Y: 1})
	r = r.AddPoint(geom.PointI32{X: 2, Y: 2})
	require.Equal(t, geom.Rect{Left: 1, Top: 1, Right: 3, Bottom: 3}, r)
	require.Equal(t, 2, r.Width())
	require.Equal(t, 2, r.Height())
}

func TestRectMerge(t *testing.T) {
	var a, b geom.Rect
	a = a.AddPoint(geom.PointI32{X: 1, Y: 1})
	b = b.AddPoint(geom.PointI32{X: 2, Y: 2})
	require.Equal(t, geom.Rect{Left: 1, Top: 1, Right: 3, Bottom: 3}, a.Merge(b))
}

func TestRectClampIntersect(t *testing.T) {
	var r geom.Rect
	r = r.AddPoint(geom.PointI32{X: 1, Y: 1})
	r = r.AddPoint(geom.PointI32{X: 4, Y: 4})
	clipped := r.Intersect(geom.NewRectXYWH(0, 0, 3, 3))
	require.Equal(t, geom.NewRectXYWH(1, 1, 2, 2), clipped)
}

func TestRectCornersF(t *testing.T) {
	r := geom.NewRectXYWH(10, 20, 5, 8)
	want := [4]geom.PointF64{
		{X: 10, Y: 20},
		{X: 15, Y: 20},
		{X: 10, Y: 28},
		{X: 15, Y: 28},
	}
	require.Equal(t, want, r.CornersF())
}
