package config

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/symcode/symcode/geom"
)

// jsonPoint mirrors geom.PointF64 for (de)serialization without making
// geom aware of the JSON field names a config file uses.
type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonConfig struct {
	CodeWidth                int         `json:"codeWidth"`
	CodeHeight               int         `json:"codeHeight"`
	SymbolWidth              int         `json:"symbolWidth"`
	SymbolHeight             int         `json:"symbolHeight"`
	FinderWidth              int         `json:"finderWidth"`
	FinderHeight             int         `json:"finderHeight"`
	FinderPositions          []jsonPoint `json:"finderPositions"`
	GlyphAnchors             []jsonPoint `json:"glyphAnchors"`
	MaxExtraFinderCandidates int         `json:"maxExtraFinderCandidates"`
	RectifyErrorThreshold    float64     `json:"rectifyErrorThreshold"`
	StatTolerance            float64     `json:"statTolerance"`
	MaxEncodingDifference    int         `json:"maxEncodingDifference"`
	EmptyClusterThreshold    float64     `json:"emptyClusterThreshold"`
	QuietZoneWidth           int         `json:"quietZoneWidth"`
}

// FromJSON decodes a Config from r. Unset numeric fields decode as the
// JSON zero value, so a partial document silently produces a degenerate
// layout; FromJSON rejects that by requiring positive dimensions,
// exactly four finder positions and at least one glyph anchor.
func FromJSON(r io.Reader) (Config, error) {
	var doc jsonConfig
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if doc.CodeWidth <= 0 || doc.CodeHeight <= 0 || doc.SymbolWidth <= 0 || doc.SymbolHeight <= 0 {
		return Config{}, fmt.Errorf("%w: code and symbol dimensions must be positive", ErrInvalidLayout)
	}
	if len(doc.FinderPositions) != 4 {
		return Config{}, fmt.Errorf("%w: need exactly 4 finder positions, got %d", ErrInvalidLayout, len(doc.FinderPositions))
	}
	if len(doc.GlyphAnchors) == 0 {
		return Config{}, fmt.Errorf("%w: need at least 1 glyph anchor", ErrInvalidLayout)
	}

	cfg := Default()
	cfg.CodeWidth, cfg.CodeHeight = doc.CodeWidth, doc.CodeHeight
	cfg.SymbolWidth, cfg.SymbolHeight = doc.SymbolWidth, doc.SymbolHeight
	if doc.FinderWidth > 0 && doc.FinderHeight > 0 {
		cfg.FinderWidth, cfg.FinderHeight = doc.FinderWidth, doc.FinderHeight
	}
	cfg.FinderPositions = toPoints(doc.FinderPositions)
	cfg.GlyphAnchors = toPoints(doc.GlyphAnchors)
	if doc.MaxExtraFinderCandidates > 0 {
		cfg.MaxExtraFinderCandidates = doc.MaxExtraFinderCandidates
	}
	if doc.RectifyErrorThreshold > 0 {
		cfg.RectifyErrorThreshold = doc.RectifyErrorThreshold
	}
	if doc.StatTolerance > 0 {
		cfg.StatTolerance = doc.StatTolerance
	}
	if doc.MaxEncodingDifference > 0 {
		cfg.MaxEncodingDifference = doc.MaxEncodingDifference
	}
	if doc.EmptyClusterThreshold > 0 {
		cfg.EmptyClusterThreshold = doc.EmptyClusterThreshold
	}
	if doc.QuietZoneWidth > 0 {
		cfg.QuietZoneWidth = doc.QuietZoneWidth
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func toPoints(pts []jsonPoint) []geom.PointF64 {
	out := make([]geom.PointF64, len(pts))
	for i, p := range pts {
		out[i] = geom.PointF64{X: p.X, Y: p.Y}
	}
	return out
}
