// Package glyph implements the visual alphabet: the catalog of symbol
// shapes a code's data cells are drawn from, their shape-signature
// prefilter, and the template library used to recognize a cropped cell
// against the catalog.
package glyph

import "github.com/symcode/symcode/bitutil"

// Label identifies one glyph of the alphabet. The zero value is the
// first glyph, LongRR; Invalid (-1) stands for "no match."
//
// Index order matches the alphabet's reference layout: top to bottom,
// left to right over the printed sheet used to build a Library via
// ReadToLibrary.
type Label int8

const Invalid Label = -1

const (
	LongRR Label = iota
	LongDD
	LongLL
	LongUU

	LongRL
	LongDU
	LongLR
	LongUD

	SmallDoubleUD
	SmallDoubleRL
	SmallDoubleDU
	SmallDoubleLR

	DoubleTallDiamond
	StackedFatDiamond
	FourTriangles
	FourKites

	ArrowRR
	ArrowDD
	ArrowLL
	ArrowUU

	ArrowRL
	ArrowDU
	FatDiamond
	TallDiamond

	SmallTripleU
	SmallTripleR
	SmallTripleD
	SmallTripleL

	TriforceD
	TriforceL
	TriforceU
	TriforceR

	numLabels
)

// NumVariants returns the number of valid (non-Invalid) labels in the
// alphabet.
func NumVariants() int { return int(numLabels) }

// FromIndex returns the label at position i in declaration order, or
// false if i is out of range.
func FromIndex(i int) (Label, bool) {
	if i < 0 || i >= NumVariants() {
		return Invalid, false
	}
	return Label(i), true
}

// Index returns l's position in declaration order, or false for
// Invalid.
func (l Label) Index() (int, bool) {
	if l == Invalid {
		return 0, false
	}
	return int(l), true
}

// BitVec returns l's big-endian bit representation in exactly length
// bits, or false for Invalid.
func (l Label) BitVec(length int) ([]bool, bool) {
	idx, ok := l.Index()
	if !ok {
		return nil, false
	}
	return bitutil.IntoBitVec(uint64(idx), length), true
}

// FromBitVec reverses BitVec: it decodes a big-endian bit sequence into
// the label at that index. It returns Invalid if the decoded index is
// out of range.
func FromBitVec(bits []bool) Label {
	idx := bitutil.BitVecToPrimitive(bits)
	l, ok := FromIndex(int(idx))
	if !ok {
		return Invalid
	}
	return l
}

var names = map[Label]string{
	LongRR: "LongRR", LongDD: "LongDD", LongLL: "LongLL", LongUU: "LongUU",
	LongRL: "LongRL", LongDU: "LongDU", LongLR: "LongLR", LongUD: "LongUD",
	SmallDoubleUD: "SmallDoubleUD", SmallDoubleRL: "SmallDoubleRL",
	SmallDoubleDU: "SmallDoubleDU", SmallDoubleLR: "SmallDoubleLR",
	DoubleTallDiamond: "DoubleTallDiamond", StackedFatDiamond: "StackedFatDiamond",
	FourTriangles: "FourTriangles", FourKites: "FourKites",
	ArrowRR: "ArrowRR", ArrowDD: "ArrowDD", ArrowLL: "ArrowLL", ArrowUU: "ArrowUU",
	ArrowRL: "ArrowRL", ArrowDU: "ArrowDU", FatDiamond: "FatDiamond", TallDiamond: "TallDiamond",
	SmallTripleU: "SmallTripleU", SmallTripleR: "SmallTripleR",
	SmallTripleD: "SmallTripleD", SmallTripleL: "SmallTripleL",
	TriforceD: "TriforceD", TriforceL: "TriforceL", TriforceU: "TriforceU", TriforceR: "TriforceR",
}

// String implements fmt.Stringer.
func (l Label) String() string {
	if name, ok := names[l]; ok {
		return name
	}
	return "Invalid"
}
