package symcode

import (
	"github.com/google/uuid"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
)

// ScanResult is the outcome of successfully scanning a frame: the
// decoded payload bits, the raw glyph labels they were read from, and
// the transform the frame was rectified under.
type ScanResult struct {
	// ID uniquely identifies this scan, for correlating it across
	// logs belonging to one run of a caller's own pipeline.
	ID uuid.UUID

	// Payload is the decoded data bits, with the CRC-5 checksum
	// already stripped and verified.
	Payload []bool

	// Glyphs is the raw label sequence read off the code, in anchor
	// order, before decoding.
	Glyphs []glyph.Label

	// ImageToObject is the fitted homography mapping the captured
	// frame to the code's canonical object space.
	ImageToObject geom.Homography
}

// GenerateResult is the outcome of rendering a payload into a code
// image.
type GenerateResult struct {
	// ID uniquely identifies this generation.
	ID uuid.UUID

	// Glyphs is the label sequence the payload was encoded into, in
	// anchor order.
	Glyphs []glyph.Label

	// Image is the rendered object-space code, at the pipeline's
	// configured CodeWidth x CodeHeight.
	Image geom.BinaryImage
}
