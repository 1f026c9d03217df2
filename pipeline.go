package symcode

import (
	"github.com/google/uuid"
	"github.com/symcode/symcode/codec"
	"github.com/symcode/symcode/config"
	"github.com/symcode/symcode/finder"
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
	"github.com/symcode/symcode/rectify"
	"github.com/symcode/symcode/transform"
)

// Pipeline ties one code layout (a config.Config) to one glyph.Library
// and runs the full locate-fit-rectify-decode or encode-render flow
// against it.
type Pipeline struct {
	cfg      config.Config
	library  *glyph.Library
	debugger Debugger
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithDebugger attaches a Debugger. The pipeline logs the library dump
// at construction, reports each finder candidate rect and a log line
// after locating and after classifying during Scan, and a log line
// after rendering in Generate; it does not call Stage.
func WithDebugger(d Debugger) Option {
	return func(p *Pipeline) { p.debugger = d }
}

// New builds a Pipeline for cfg and library. It returns ErrEmptyLibrary
// if library has no templates, since Scan could never classify a glyph.
func New(cfg config.Config, library *glyph.Library, opts ...Option) (*Pipeline, error) {
	if library.IsEmpty() {
		return nil, ErrEmptyLibrary
	}
	p := &Pipeline{cfg: cfg, library: library, debugger: NopDebugger{}}
	for _, opt := range opts {
		opt(p)
	}
	p.debugger.Log(library.DebugDump())
	return p, nil
}

// Scan locates a code in frame, fits its perspective transform,
// rectifies it, classifies its glyphs, and decodes the checksummed
// payload they carry.
func (p *Pipeline) Scan(frame geom.ColorImage) (ScanResult, error) {
	finderRects, err := finder.Locate(frame, p.cfg.MaxFinderCandidates())
	if err != nil {
		return ScanResult{}, err
	}
	p.debugger.Log("located finder candidates")
	for _, r := range finderRects {
		p.debugger.Rect("finder-candidate", r)
	}

	fit, err := transform.Fit(
		finderRects, p.cfg.FinderPositions, p.cfg.SymbolHeight,
		p.cfg.CodeWidth, p.cfg.CodeHeight, frame.Width, frame.Height,
		p.cfg.RectifyErrorThreshold,
	)
	if err != nil {
		return ScanResult{}, err
	}

	objectToImage, ok := fit.Homography.Inverse()
	if !ok {
		return ScanResult{}, rectify.ErrSingularTransform
	}
	if transform.OutOfBound(objectToImage, p.cfg.CodeWidth, p.cfg.CodeHeight, frame.Width, frame.Height) {
		return ScanResult{}, ErrOutOfBoundTransform
	}

	labels, err := rectify.ReadGlyphs(frame, fit.Homography, p.library, p.cfg)
	if err != nil {
		return ScanResult{}, err
	}
	p.debugger.Log("classified glyphs")

	payload, err := codec.Decode(labels)
	if err != nil {
		return ScanResult{}, err
	}

	return ScanResult{
		ID:            uuid.New(),
		Payload:       payload,
		Glyphs:        labels,
		ImageToObject: fit.Homography,
	}, nil
}

// Generate encodes payload into a glyph sequence and renders it onto a
// blank object-space canvas: finder marks at their configured
// positions, then one glyph template per configured anchor.
func (p *Pipeline) Generate(payload []bool) (GenerateResult, error) {
	labels, err := codec.Encode(payload, p.cfg.NumGlyphsInCode())
	if err != nil {
		return GenerateResult{}, err
	}

	image := geom.NewBinaryImage(p.cfg.CodeWidth, p.cfg.CodeHeight)

	mark := finder.CircleMark(p.cfg.FinderWidth, p.cfg.FinderHeight)
	for _, pos := range p.cfg.FinderPositions {
		topLeft := geom.PointI32{
			X: int(pos.X) - p.cfg.FinderWidth/2,
			Y: int(pos.Y) - p.cfg.FinderHeight/2,
		}
		image.Paste(mark, topLeft)
	}

	for i, anchor := range p.cfg.GlyphAnchors {
		symbol, ok := p.library.ByLabel(labels[i])
		if !ok {
			continue
		}
		image.Paste(symbol.Image, geom.PointI32{X: int(anchor.X), Y: int(anchor.Y)})
	}
	p.debugger.Log("rendered code image")

	return GenerateResult{
		ID:     uuid.New(),
		Glyphs: labels,
		Image:  image,
	}, nil
}
