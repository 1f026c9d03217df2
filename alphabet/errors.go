package alphabet

import "errors"

// ErrCropOutOfBounds is returned when a configured grid cell would read
// outside the source sheet image.
var ErrCropOutOfBounds = errors.New("alphabet: cell crop falls outside the sheet image")
