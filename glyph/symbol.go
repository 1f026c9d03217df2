package glyph

import "github.com/symcode/symcode/geom"

// Symbol is one entry of a Library: a template image paired with its
// label and precomputed signature.
type Symbol struct {
	Image geom.BinaryImage
	Label Label
	Sig   Signature
}

// NewSymbol builds a Symbol from img, computing its signature at the
// given tolerance.
func NewSymbol(img geom.BinaryImage, label Label, tolerance float64) Symbol {
	return Symbol{Image: img, Label: label, Sig: NewSignature(img, tolerance)}
}
