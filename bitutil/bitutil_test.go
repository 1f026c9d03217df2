package bitutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/bitutil"
)

func TestNumBitsToStore(t *testing.T) {
	cases := map[uint64]int{
		0:  0,
		1:  1,
		32: 5,
		33: 6,
	}
	for n, want := range cases {
		require.Equal(t, want, bitutil.NumBitsToStore(n), "n=%d", n)
	}
}

func TestIntoBitVecRoundTrip(t *testing.T) {
	for label := uint64(0); label < 32; label++ {
		v := bitutil.IntoBitVec(label, 5)
		require.Len(t, v, 5)
		require.Equal(t, label, bitutil.BitVecToPrimitive(v))
	}
}

func TestIntoBitVecZero(t *testing.T) {
	v := bitutil.IntoBitVec(0, 6)
	for _, b := range v {
		require.False(t, b)
	}
}

func TestIntoBitVecHighBit(t *testing.T) {
	v := bitutil.IntoBitVec(32, 6) // 100000
	require.True(t, v[0])
	for i := 1; i < 6; i++ {
		require.False(t, v[i])
	}
}

func TestIntoBitVecPanicsOnShortLength(t *testing.T) {
	require.Panics(t, func() {
		bitutil.IntoBitVec(33, 5)
	})
}

func TestPackBitsWholeBytes(t *testing.T) {
	bits := append(bitutil.IntoBitVec(0b01001010, 8), bitutil.IntoBitVec(0b00000001, 8)...)
	require.Equal(t, []byte{0b01001010, 0b00000001}, bitutil.PackBits(bits))
}

func TestPackBitsZeroPadsFinalByte(t *testing.T) {
	bits := []bool{true, false, true}
	require.Equal(t, []byte{0b10100000}, bitutil.PackBits(bits))
}

func TestUnpackBitsReversesPackBits(t *testing.T) {
	bits := append(bitutil.IntoBitVec(0b01001010, 8), bitutil.IntoBitVec(0b00001, 5)...)
	packed := bitutil.PackBits(bits)
	require.Equal(t, bits, bitutil.UnpackBits(packed, len(bits)))
}

func TestUnpackBitsPanicsWhenDataTooShort(t *testing.T) {
	require.Panics(t, func() {
		bitutil.UnpackBits([]byte{0xFF}, 9)
	})
}
