package glyph

import "github.com/symcode/symcode/geom"

// numComparisons is the number of tolerant three-way comparisons a
// Signature is built from; each contributes 2 bits.
const numComparisons = 10

// SignatureLength is the number of bits in a Signature.
const SignatureLength = numComparisons * 2

// Signature is a coarse shape descriptor used to prefilter template
// candidates by Hamming distance before the more expensive
// pixel-difference tiebreak. It is built from eight block-aggregate
// foreground-pixel counts (four quadrants a,b,c,d and four bands
// e,f,g,h) compared pairwise with a tolerance band around equality.
type Signature [SignatureLength]bool

// Hamming returns the number of bits at which s and o disagree.
func (s Signature) Hamming(o Signature) int {
	n := 0
	for i := range s {
		if s[i] != o[i] {
			n++
		}
	}
	return n
}

// IsEmpty reports whether s was computed from an all-background image.
func (s Signature) IsEmpty() bool {
	for _, b := range s {
		if b {
			return false
		}
	}
	return true
}

// NewSignature computes the shape signature of img, tolerating up to
// `tolerance` fractional imbalance between two counts before treating
// them as unequal. tolerance 0 requires exact equality.
func NewSignature(img geom.BinaryImage, tolerance float64) Signature {
	if img.Width == 0 || img.Height == 0 {
		return Signature{}
	}

	horizQ1, vertQ1 := img.Width, img.Height
	horizMid, vertMid := img.Width*2, img.Height*2
	horizQ3, vertQ3 := horizMid+horizQ1, vertMid+vertQ1

	up := geom.Resample(img, img.Width*4, img.Height*4)

	a := geom.SampleArea(up, 0, 0, horizMid, vertMid)
	b := geom.SampleArea(up, horizMid, 0, up.Width, vertMid)
	c := geom.SampleArea(up, 0, vertMid, horizMid, up.Height)
	d := geom.SampleArea(up, horizMid, vertMid, up.Width, up.Height)

	e := geom.SampleArea(up, horizQ1, 0, horizQ3, vertQ1)
	f := geom.SampleArea(up, horizQ1, vertQ3, horizQ3, up.Height)
	g := geom.SampleArea(up, 0, vertQ1, horizQ1, vertQ3)
	h := geom.SampleArea(up, horizQ3, vertQ1, up.Width, vertQ3)

	if a+b+c+d == 0 {
		return Signature{}
	}

	var sig Signature
	for i := range sig {
		sig[i] = true
	}

	offset := 0
	set := func(x, y int) {
		switch approximateCompare(x, y, tolerance) {
		case -1:
			sig[offset] = false
		case 1:
			sig[offset+1] = false
		}
		offset += 2
	}

	set(a+b, c+d) // vertical: top vs bottom
	set(a+c, b+d) // horizontal: left vs right
	set(a+d, b+c) // diagonal: backslash vs slash
	set(a, b)
	set(a, c)
	set(a, d)
	set(b, c)
	set(b, d)
	set(c, d)
	set(e+f, g+h)

	return sig
}

// approximateCompare returns -1, 0, or 1 for x<y, x==y, x>y, but treats
// x and y as equal whenever their ratio is within tolerance of 1 — the
// higher the tolerance, the easier it is for two counts to compare
// equal.
func approximateCompare(x, y int, tolerance float64) int {
	if x == y {
		return 0
	}
	lo, hi := x, y
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 0
	}
	if float64(lo)/float64(hi) > 1.0-tolerance {
		return 0
	}
	if x > y {
		return 1
	}
	return -1
}
