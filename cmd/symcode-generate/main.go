// Command symcode-generate renders a payload into a symcode PNG image
// using a template sheet to source its glyph shapes.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/symcode/symcode"
	"github.com/symcode/symcode/alphabet"
	"github.com/symcode/symcode/bitutil"
	"github.com/symcode/symcode/codec"
	"github.com/symcode/symcode/config"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
	"github.com/symcode/symcode/imageio"
)

func main() {
	templatesPath := flag.String("templates", "", "path to a PNG sheet of glyph templates")
	configPath := flag.String("config", "", "path to a JSON layout config (defaults to the reference layout)")
	payloadHex := flag.String("payload", "", "payload bytes, hex-encoded")
	outPath := flag.String("out", "code.png", "output PNG path")
	flag.Parse()

	if *templatesPath == "" {
		fmt.Fprintln(os.Stderr, "symcode-generate: -templates is required")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-generate: %v\n", err)
		os.Exit(1)
	}

	library, err := loadLibrary(*templatesPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-generate: %v\n", err)
		os.Exit(1)
	}

	pipeline, err := symcode.New(cfg, library)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-generate: %v\n", err)
		os.Exit(1)
	}

	payload, err := decodePayload(*payloadHex, codec.PayloadCapacity(cfg.NumGlyphsInCode()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-generate: %v\n", err)
		os.Exit(1)
	}

	result, err := pipeline.Generate(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-generate: generate: %v\n", err)
		os.Exit(1)
	}

	if err := imageio.WriteBinaryPNG(*outPath, result.Image); err != nil {
		fmt.Fprintf(os.Stderr, "symcode-generate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (id %s, %d glyphs)\n", *outPath, result.ID, len(result.Glyphs))
	for i, label := range result.Glyphs {
		fmt.Printf("  glyph %d: %s\n", i, label)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return config.FromJSON(f)
}

func loadLibrary(path string, cfg config.Config) (*glyph.Library, error) {
	sheet, err := imageio.ReadColorPNG(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	binary := geom.GlobalAdaptiveThreshold(sheet)
	library, err := alphabet.ReadToLibrary(binary, alphabet.DefaultReaderParams(), cfg.SymbolWidth, cfg.SymbolHeight, cfg.StatTolerance)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return library, nil
}

func decodePayload(payloadHex string, capacityBits int) ([]bool, error) {
	if payloadHex == "" {
		return make([]bool, capacityBits), nil
	}
	raw, err := hex.DecodeString(payloadHex)
	if err != nil {
		return nil, fmt.Errorf("invalid -payload hex: %w", err)
	}
	if len(raw)*8 < capacityBits {
		return nil, fmt.Errorf("payload too short: need %d bits, got %d", capacityBits, len(raw)*8)
	}
	return bitutil.UnpackBits(raw, capacityBits), nil
}
