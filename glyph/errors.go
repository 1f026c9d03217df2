package glyph

import "errors"

// ErrLibraryFull is returned by Library.Add once every label in the
// alphabet has been assigned to a template.
var ErrLibraryFull = errors.New("glyph: library already has one template per alphabet label")
