// Package codec turns a payload bit sequence into a sequence of glyph
// labels and back, appending a CRC-5 checksum for integrity.
package codec

import "errors"

var (
	// ErrPayloadLength is returned when the payload's bit length does
	// not match the number of glyph cells the codec was built for.
	ErrPayloadLength = errors.New("codec: payload length does not match the configured number of glyphs")

	// ErrInvalidGlyph is returned by Decode when any symbol in the
	// input is glyph.Invalid.
	ErrInvalidGlyph = errors.New("codec: encoded data contains an unrecognized glyph")

	// ErrChecksumMismatch is returned by Decode when the trailing
	// CRC-5 checksum does not match the decoded payload.
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")

	// ErrSanityCheckFailed is returned by Encode if round-tripping the
	// freshly encoded glyphs back through Decode does not reproduce
	// the original payload.
	ErrSanityCheckFailed = errors.New("codec: encoder sanity check failed")
)
