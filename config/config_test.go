package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/symcode/symcode/config"
)

func TestDefaultLayout(t *testing.T) {
	cfg := config.Default()
	require.Len(t, cfg.FinderPositions, 4)
	require.Len(t, cfg.GlyphAnchors, 5)
	require.Equal(t, 5, cfg.NumGlyphsInCode())
	require.Equal(t, 7, cfg.MaxFinderCandidates())
	require.Equal(t, int(0.15*80*80), cfg.AbsoluteEmptyClusterThreshold(80, 80))
}

func TestFromJSONOverridesDefaults(t *testing.T) {
	doc := `{
		"codeWidth": 800, "codeHeight": 800,
		"symbolWidth": 160, "symbolHeight": 160,
		"finderPositions": [
			{"x": 400, "y": 160}, {"x": 400, "y": 400},
			{"x": 160, "y": 640}, {"x": 640, "y": 640}
		],
		"glyphAnchors": [{"x": 80, "y": 80}]
	}`
	cfg, err := config.FromJSON(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 800, cfg.CodeWidth)
	require.Equal(t, 160, cfg.SymbolWidth)
	require.Len(t, cfg.FinderPositions, 4)
	require.Len(t, cfg.GlyphAnchors, 1)
	require.Equal(t, 0.36, cfg.StatTolerance)
}

func TestFromJSONRejectsMissingFinders(t *testing.T) {
	doc := `{"codeWidth": 400, "codeHeight": 400, "symbolWidth": 80, "symbolHeight": 80,
		"finderPositions": [{"x": 0, "y": 0}], "glyphAnchors": [{"x": 0, "y": 0}]}`
	_, err := config.FromJSON(strings.NewReader(doc))
	require.ErrorIs(t, err, config.ErrInvalidLayout)
}

func TestFromJSONRejectsFinderPositionOutsideCanvas(t *testing.T) {
	doc := `{
		"codeWidth": 400, "codeHeight": 400,
		"symbolWidth": 80, "symbolHeight": 80,
		"finderPositions": [
			{"x": 200, "y": 80}, {"x": 200, "y": 200},
			{"x": 80, "y": 320}, {"x": 500, "y": 320}
		],
		"glyphAnchors": [{"x": 40, "y": 40}]
	}`
	_, err := config.FromJSON(strings.NewReader(doc))
	require.ErrorIs(t, err, config.ErrInvalidLayout)
}

func TestFromJSONRejectsGlyphAnchorOutsideCanvas(t *testing.T) {
	doc := `{
		"codeWidth": 400, "codeHeight": 400,
		"symbolWidth": 80, "symbolHeight": 80,
		"finderPositions": [
			{"x": 200, "y": 80}, {"x": 200, "y": 200},
			{"x": 80, "y": 320}, {"x": 320, "y": 320}
		],
		"glyphAnchors": [{"x": 40, "y": 40}, {"x": -10, "y": 40}]
	}`
	_, err := config.FromJSON(strings.NewReader(doc))
	require.ErrorIs(t, err, config.ErrInvalidLayout)
}

func TestValidateAcceptsDefaultLayout(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}
