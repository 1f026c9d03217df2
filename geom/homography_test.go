package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/geom"
)

func TestFitHomographyIdentitySquare(t *testing.T) {
	src := [4]geom.PointF64{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := src

	h, err := geom.FitHomography(src, dst)
	require.NoError(t, err)

	for _, p := range src {
		got := h.Forward(p)
		require.InDelta(t, p.X, got.X, 1e-9)
		require.InDelta(t, p.Y, got.Y, 1e-9)
	}
}

func TestFitHomographyTranslationAndScale(t *testing.T) {
	src := [4]geom.PointF64{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := [4]geom.PointF64{{X: 10, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 40}, {X: 10, Y: 40}}

	h, err := geom.FitHomography(src, dst)
	require.NoError(t, err)

	got := h.Forward(geom.PointF64{X: 0.5, Y: 0.5})
	require.InDelta(t, 20, got.X, 1e-6)
	require.InDelta(t, 30, got.Y, 1e-6)
}

func TestHomographyInverseRoundTrip(t *testing.T) {
	src := [4]geom.PointF64{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := [4]geom.PointF64{{X: 5, Y: 5}, {X: 40, Y: 8}, {X: 42, Y: 38}, {X: 4, Y: 36}}

	h, err := geom.FitHomography(src, dst)
	require.NoError(t, err)

	inv, ok := h.Inverse()
	require.True(t, ok)

	for _, p := range src {
		roundTripped := inv.Forward(h.Forward(p))
		require.InDelta(t, p.X, roundTripped.X, 1e-6)
		require.InDelta(t, p.Y, roundTripped.Y, 1e-6)
	}
}

func TestFitHomographyDegenerateCollinear(t *testing.T) {
	src := [4]geom.PointF64{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	dst := [4]geom.PointF64{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}

	_, err := geom.FitHomography(src, dst)
	require.Error(t, err)
}
