package glyph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
)

func crossTemplate(w, h int) geom.BinaryImage {
	img := geom.NewBinaryImage(w, h)
	for y := 0; y < h; y++ {
		img.Set(w/2, y, true)
	}
	for x := 0; x < w; x++ {
		img.Set(x, h/2, true)
	}
	return img
}

func diagonalTemplate(w, h int) geom.BinaryImage {
	img := geom.NewBinaryImage(w, h)
	for i := 0; i < w && i < h; i++ {
		img.Set(i, i, true)
	}
	return img
}

func TestLibraryAddAssignsSequentialLabels(t *testing.T) {
	lib := glyph.NewLibrary(16, 16, 0.3)
	require.True(t, lib.IsEmpty())

	require.NoError(t, lib.Add(crossTemplate(16, 16)))
	require.NoError(t, lib.Add(diagonalTemplate(16, 16)))
	require.Equal(t, 2, lib.Len())

	first, ok := lib.At(0)
	require.True(t, ok)
	require.Equal(t, glyph.LongRR, first.Label)

	second, ok := lib.At(1)
	require.True(t, ok)
	require.Equal(t, glyph.LongDD, second.Label)
}

func TestLibraryFindMostSimilarExactMatch(t *testing.T) {
	lib := glyph.NewLibrary(16, 16, 0.3)
	require.NoError(t, lib.Add(crossTemplate(16, 16)))
	require.NoError(t, lib.Add(diagonalTemplate(16, 16)))

	label := lib.FindMostSimilar(crossTemplate(16, 16), 3)
	require.Equal(t, glyph.LongRR, label)
}

func TestLibraryFindMostSimilarNoneWithinTolerance(t *testing.T) {
	lib := glyph.NewLibrary(16, 16, 0.0)
	require.NoError(t, lib.Add(crossTemplate(16, 16)))

	blank := geom.NewBinaryImage(16, 16)
	label := lib.FindMostSimilar(blank, 0)
	require.Equal(t, glyph.Invalid, label)
}

func TestLibraryByLabel(t *testing.T) {
	lib := glyph.NewLibrary(16, 16, 0.3)
	require.NoError(t, lib.Add(crossTemplate(16, 16)))

	sym, ok := lib.ByLabel(glyph.LongRR)
	require.True(t, ok)
	require.Equal(t, glyph.LongRR, sym.Label)

	_, ok = lib.ByLabel(glyph.TriforceR)
	require.False(t, ok)
}
