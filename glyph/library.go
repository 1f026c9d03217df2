package glyph

import (
	"fmt"
	"math"
	"strings"

	"github.com/symcode/symcode/geom"
)

// Library is the insertion-ordered catalog of known glyph templates
// that a cropped, rectified cell is matched against. Labels are
// assigned by insertion order: the first Add gets FromIndex(0), the
// second FromIndex(1), and so on.
type Library struct {
	symbolWidth, symbolHeight int
	tolerance                 float64
	templates                 []Symbol
}

// NewLibrary creates an empty library. Every template and every image
// passed to FindMostSimilar is resampled to symbolWidth x symbolHeight
// before comparison, so sheets scanned at a different resolution than
// they were authored at still compare consistently. tolerance is the
// signature comparison tolerance (see NewSignature).
func NewLibrary(symbolWidth, symbolHeight int, tolerance float64) *Library {
	return &Library{symbolWidth: symbolWidth, symbolHeight: symbolHeight, tolerance: tolerance}
}

// Len returns the number of templates in the library.
func (l *Library) Len() int { return len(l.templates) }

// IsEmpty reports whether the library has no templates.
func (l *Library) IsEmpty() bool { return len(l.templates) == 0 }

// Add appends img as a new template, assigning it the next label in
// insertion order. It returns ErrLibraryFull if the alphabet is already
// exhausted.
func (l *Library) Add(img geom.BinaryImage) error {
	label, ok := FromIndex(len(l.templates))
	if !ok {
		return ErrLibraryFull
	}
	resampled := geom.Resample(img, l.symbolWidth, l.symbolHeight)
	l.templates = append(l.templates, NewSymbol(resampled, label, l.tolerance))
	return nil
}

// At returns the i-th inserted template.
func (l *Library) At(i int) (Symbol, bool) {
	if i < 0 || i >= len(l.templates) {
		return Symbol{}, false
	}
	return l.templates[i], true
}

// ByLabel returns the template carrying label.
func (l *Library) ByLabel(label Label) (Symbol, bool) {
	for _, t := range l.templates {
		if t.Label == label {
			return t, true
		}
	}
	return Symbol{}, false
}

// FindMostSimilar matches img against the library: candidates are first
// filtered by signature Hamming distance (rejecting any template more
// than maxEncodingDifference bits away), then the surviving candidate
// with the smallest per-pixel XOR area against img wins. It returns
// Invalid if no template survives the signature prefilter.
func (l *Library) FindMostSimilar(img geom.BinaryImage, maxEncodingDifference int) Label {
	resampled := geom.Resample(img, l.symbolWidth, l.symbolHeight)
	inputSig := NewSignature(resampled, l.tolerance)

	minError := math.MaxInt64
	best := Invalid
	for _, t := range l.templates {
		if t.Sig.Hamming(inputSig) > maxEncodingDifference {
			continue
		}
		error := t.Image.DiffArea(resampled)
		if error < minError {
			minError = error
			best = t.Label
		}
	}
	return best
}

// DebugDump renders each template's label and signature, one per line.
// It mirrors the kind of text dump a Debugger implementation would log
// while tuning stat_tolerance against a physical alphabet sheet.
func (l *Library) DebugDump() string {
	var b strings.Builder
	for _, t := range l.templates {
		fmt.Fprintf(&b, "%s: %v\n", t.Label, t.Sig)
	}
	return b.String()
}
