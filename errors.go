package symcode

import (
	"errors"

	"github.com/symcode/symcode/transform"
)

// ErrOutOfBoundTransform is returned by Scan when the best-fit
// transform would sample the code's object space from outside the
// captured frame. It is the same value as transform.ErrOutOfBoundTransform.
var ErrOutOfBoundTransform = transform.ErrOutOfBoundTransform

// ErrEmptyLibrary is returned by New when no glyph templates were
// supplied; a pipeline without templates can locate and rectify a code
// but can never classify its glyphs.
var ErrEmptyLibrary = errors.New("symcode: glyph library has no templates")
