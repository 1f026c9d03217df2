package glyph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/glyph"
)

func TestFromIndexRoundTrip(t *testing.T) {
	l, ok := glyph.FromIndex(0)
	require.True(t, ok)
	require.Equal(t, glyph.LongRR, l)

	l, ok = glyph.FromIndex(4)
	require.True(t, ok)
	require.Equal(t, glyph.LongRL, l)

	l, ok = glyph.FromIndex(31)
	require.True(t, ok)
	require.Equal(t, glyph.TriforceR, l)

	_, ok = glyph.FromIndex(32)
	require.False(t, ok)
}

func TestNumVariants(t *testing.T) {
	require.Equal(t, 32, glyph.NumVariants())
}

func TestLabelBitVecRoundTrip(t *testing.T) {
	for i := 0; i < glyph.NumVariants(); i++ {
		l, _ := glyph.FromIndex(i)
		bits, ok := l.BitVec(5)
		require.True(t, ok)
		require.Equal(t, l, glyph.FromBitVec(bits))
	}
}

func TestInvalidLabelHasNoIndexOrBitVec(t *testing.T) {
	_, ok := glyph.Invalid.Index()
	require.False(t, ok)

	_, ok = glyph.Invalid.BitVec(5)
	require.False(t, ok)
}
