package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/geom"
)

func checkerboard(w, h int) geom.ColorImage {
	img := geom.NewColorImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, geom.Color{R: 20, G: 20, B: 20, A: 255})
			} else {
				img.Set(x, y, geom.Color{R: 235, G: 235, B: 235, A: 255})
			}
		}
	}
	return img
}

func TestGlobalAdaptiveThresholdSeparatesDarkLight(t *testing.T) {
	img := checkerboard(8, 8)
	bin := geom.GlobalAdaptiveThreshold(img)
	require.True(t, bin.Get(0, 0))
	require.False(t, bin.Get(1, 0))
}

func TestLocalAdaptiveThresholdSeparatesDarkLight(t *testing.T) {
	img := checkerboard(16, 16)
	bin := geom.LocalAdaptiveThreshold(img, 4, 0.1)
	require.True(t, bin.Get(0, 0))
	require.False(t, bin.Get(1, 0))
}
