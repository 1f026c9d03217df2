package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/codec"
	"github.com/symcode/symcode/glyph"
)

func bitsFromUint(n uint64, length int) []bool {
	bits := make([]bool, length)
	for i := 0; i < length; i++ {
		bits[i] = (n>>uint(length-1-i))&1 == 1
	}
	return bits
}

func TestPayloadCapacity(t *testing.T) {
	require.Equal(t, 5, codec.NumBitsPerGlyph())
	require.Equal(t, 20, codec.PayloadCapacity(5))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := bitsFromUint(0b01001010000000011000, 20)
	labels, err := codec.Encode(payload, 5)
	require.NoError(t, err)
	require.Len(t, labels, 5)

	decoded, err := codec.Decode(labels)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestEncodeRejectsWrongLength(t *testing.T) {
	_, err := codec.Encode(make([]bool, 19), 5)
	require.ErrorIs(t, err, codec.ErrPayloadLength)
}

func TestDecodeRejectsInvalidGlyph(t *testing.T) {
	labels := []glyph.Label{glyph.LongRR, glyph.Invalid, glyph.LongRR, glyph.LongRR, glyph.LongRR}
	_, err := codec.Decode(labels)
	require.ErrorIs(t, err, codec.ErrInvalidGlyph)
}

func TestDecodeRejectsCorruptedChecksum(t *testing.T) {
	payload := bitsFromUint(0b11110000111100001111, 20)
	labels, err := codec.Encode(payload, 5)
	require.NoError(t, err)

	// Flip one bit of the last glyph, which carries part of the checksum.
	bits, ok := labels[4].BitVec(codec.NumBitsPerGlyph())
	require.True(t, ok)
	bits[0] = !bits[0]
	labels[4] = glyph.FromBitVec(bits)

	_, err = codec.Decode(labels)
	require.ErrorIs(t, err, codec.ErrChecksumMismatch)
}
