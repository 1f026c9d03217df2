package codec

import (
	"github.com/symcode/symcode/bitutil"
	"github.com/symcode/symcode/crc"
	"github.com/symcode/symcode/glyph"
)

// checksumBits is the width of the CRC-5 checksum appended to every
// payload.
const checksumBits = 5

// NumBitsPerGlyph returns the number of bits one glyph encodes, given
// the alphabet's variant count.
func NumBitsPerGlyph() int {
	return bitutil.NumBitsToStore(uint64(glyph.NumVariants()))
}

// PayloadCapacity returns the number of payload bits (excluding the
// checksum) a code with numGlyphs cells can carry.
func PayloadCapacity(numGlyphs int) int {
	return NumBitsPerGlyph()*numGlyphs - checksumBits
}

// Encode packs payload into a sequence of numGlyphs glyph labels,
// appending a CRC-5 checksum over payload before splitting the combined
// bits into fixed-width glyph codes. It returns ErrPayloadLength if
// payload isn't exactly PayloadCapacity(numGlyphs) bits, and it always
// round-trips the result through Decode as a sanity check, surfacing
// any mismatch as ErrSanityCheckFailed rather than silently returning
// unreadable glyphs.
func Encode(payload []bool, numGlyphs int) ([]glyph.Label, error) {
	bitsPerGlyph := NumBitsPerGlyph()
	if len(payload) != PayloadCapacity(numGlyphs) {
		return nil, ErrPayloadLength
	}

	checksum := crc.Of(crc.CRC5, bitutil.PackBits(payload))
	checksumBitsVec := bitutil.IntoBitVec(checksum, checksumBits)

	combined := make([]bool, len(payload)+len(checksumBitsVec))
	copy(combined, payload)
	copy(combined[len(payload):], checksumBitsVec)

	labels := make([]glyph.Label, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		labels[i] = glyph.FromBitVec(combined[i*bitsPerGlyph : (i+1)*bitsPerGlyph])
	}

	decoded, err := Decode(labels)
	if err != nil {
		return nil, err
	}
	if !equalBits(decoded, payload) {
		return nil, ErrSanityCheckFailed
	}
	return labels, nil
}

// Decode reverses Encode: it concatenates each label's bit code,
// verifies the trailing CRC-5 checksum against the leading payload
// bits, and returns the payload with the checksum stripped off. It
// returns ErrInvalidGlyph if any label is glyph.Invalid, and
// ErrChecksumMismatch if the checksum doesn't match.
func Decode(labels []glyph.Label) ([]bool, error) {
	bitsPerGlyph := NumBitsPerGlyph()
	combined := make([]bool, 0, len(labels)*bitsPerGlyph)
	for _, l := range labels {
		bits, ok := l.BitVec(bitsPerGlyph)
		if !ok {
			return nil, ErrInvalidGlyph
		}
		combined = append(combined, bits...)
	}

	if len(combined) < checksumBits {
		return nil, ErrPayloadLength
	}
	payload := combined[:len(combined)-checksumBits]
	checksum := combined[len(combined)-checksumBits:]

	want := crc.Of(crc.CRC5, bitutil.PackBits(payload))
	got := bitutil.BitVecToPrimitive(checksum)
	if want != got {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
