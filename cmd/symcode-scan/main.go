// Command symcode-scan locates and decodes a symcode in a photographed
// PNG frame, using a template sheet to source its glyph shapes.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/symcode/symcode"
	"github.com/symcode/symcode/alphabet"
	"github.com/symcode/symcode/bitutil"
	"github.com/symcode/symcode/config"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
	"github.com/symcode/symcode/imageio"
)

func main() {
	templatesPath := flag.String("templates", "", "path to a PNG sheet of glyph templates")
	configPath := flag.String("config", "", "path to a JSON layout config (defaults to the reference layout)")
	framePath := flag.String("frame", "", "path to the photographed PNG frame")
	flag.Parse()

	if *templatesPath == "" || *framePath == "" {
		fmt.Fprintln(os.Stderr, "symcode-scan: -templates and -frame are required")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-scan: %v\n", err)
		os.Exit(1)
	}

	library, err := loadLibrary(*templatesPath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-scan: %v\n", err)
		os.Exit(1)
	}

	pipeline, err := symcode.New(cfg, library)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-scan: %v\n", err)
		os.Exit(1)
	}

	frame, err := imageio.ReadColorPNG(*framePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-scan: %v\n", err)
		os.Exit(1)
	}

	result, err := pipeline.Scan(frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symcode-scan: scan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("scan %s: payload %s\n", result.ID, hex.EncodeToString(bitutil.PackBits(result.Payload)))
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
