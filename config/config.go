// Package config holds the geometric and tolerance parameters that tie
// the finder, transform, rectify, and glyph stages to one physical code
// layout: where the finders sit, where the glyph cells sit relative to
// them, and how much slack each stage tolerates before giving up.
package config

import (
	"fmt"

	"github.com/symcode/symcode/geom"
)

// Config is the layout and tolerance parameters for one code family.
// A pipeline is built from exactly one Config; scanning a code printed
// against a different layout needs a different Config, not a different
// library.
type Config struct {
	// CodeWidth and CodeHeight are the object-space dimensions the
	// rectify stage resamples a located code into.
	CodeWidth, CodeHeight int

	// SymbolWidth and SymbolHeight are the dimensions every glyph
	// template and every cropped cell is resampled to before
	// comparison.
	SymbolWidth, SymbolHeight int

	// FinderWidth and FinderHeight are the dimensions a finder mark is
	// rendered at when generating a code.
	FinderWidth, FinderHeight int

	// FinderPositions are the object-space centers of the finder
	// marks, in the order the transform fitter's spatial arrangement
	// check expects.
	FinderPositions []geom.PointF64

	// GlyphAnchors are the object-space top-left corners of the glyph
	// cells, one per data symbol in the code.
	GlyphAnchors []geom.PointF64

	// MaxExtraFinderCandidates bounds how many spurious finder-shaped
	// clusters beyond len(FinderPositions) the frame may contain
	// before the finder stage gives up.
	MaxExtraFinderCandidates int

	// RectifyErrorThreshold is the maximum EvaluateTransform score a
	// fitted homography may have before it's rejected.
	RectifyErrorThreshold float64

	// StatTolerance is the shape-signature comparison tolerance
	// passed to glyph.NewSignature.
	StatTolerance float64

	// MaxEncodingDifference is the maximum signature Hamming distance
	// the glyph library's prefilter allows between a cropped cell and
	// a candidate template.
	MaxEncodingDifference int

	// EmptyClusterThreshold is the minimum fraction of a cell's area
	// that must be foreground for the cell to be considered anything
	// other than empty.
	EmptyClusterThreshold float64

	// QuietZoneWidth is the border, in object-space pixels, the
	// rectify stage leaves unsampled around the code.
	QuietZoneWidth int
}

// Default returns the reference layout: a 400x400 object space with
// four finders around a diamond and five 80x80 glyph cells arranged
// around the center.
func Default() Config {
	return Config{
		CodeWidth:   400,
		CodeHeight:  400,
		SymbolWidth: 80, SymbolHeight: 80,
		FinderWidth: 40, FinderHeight: 40,
		FinderPositions: []geom.PointF64{
			{X: 200, Y: 80},
			{X: 200, Y: 200},
			{X: 80, Y: 320},
			{X: 320, Y: 320},
		},
		GlyphAnchors: []geom.PointF64{
			{X: 40, Y: 40},
			{X: 40, Y: 160},
			{X: 160, Y: 280},
			{X: 280, Y: 160},
			{X: 280, Y: 40},
		},
		MaxExtraFinderCandidates: 3,
		RectifyErrorThreshold:    0.5,
		StatTolerance:            0.36,
		MaxEncodingDifference:    3,
		EmptyClusterThreshold:    0.15,
		QuietZoneWidth:           10,
	}
}

// MaxFinderCandidates returns the largest number of finder-shaped
// clusters the finder stage should accept in a frame before treating
// the scene as too cluttered to be a genuine code.
func (c Config) MaxFinderCandidates() int {
	return len(c.FinderPositions) + c.MaxExtraFinderCandidates
}

// AbsoluteEmptyClusterThreshold converts EmptyClusterThreshold into a
// pixel count for a region of the given dimensions.
func (c Config) AbsoluteEmptyClusterThreshold(width, height int) int {
	return int(c.EmptyClusterThreshold * float64(width*height))
}

// NumGlyphsInCode returns the number of data-carrying glyph cells the
// code layout defines.
func (c Config) NumGlyphsInCode() int {
	return len(c.GlyphAnchors)
}

// Validate reports ErrInvalidLayout if any finder position or glyph
// anchor falls outside the canonical [0,CodeWidth) x [0,CodeHeight)
// canvas. A layout that fails this can never be located or rectified,
// so it's rejected as a configuration error up front rather than
// surfacing later as a scan failure.
func (c Config) Validate() error {
	for i, p := range c.FinderPositions {
		if !inCanonicalBounds(p, c.CodeWidth, c.CodeHeight) {
			return fmt.Errorf("%w: finder position %d (%.0f,%.0f) outside %dx%d canvas", ErrInvalidLayout, i, p.X, p.Y, c.CodeWidth, c.CodeHeight)
		}
	}
	for i, p := range c.GlyphAnchors {
		if !inCanonicalBounds(p, c.CodeWidth, c.CodeHeight) {
			return fmt.Errorf("%w: glyph anchor %d (%.0f,%.0f) outside %dx%d canvas", ErrInvalidLayout, i, p.X, p.Y, c.CodeWidth, c.CodeHeight)
		}
	}
	return nil
}

func inCanonicalBounds(p geom.PointF64, width, height int) bool {
	return p.X >= 0 && p.X < float64(width) && p.Y >= 0 && p.Y < float64(height)
}
