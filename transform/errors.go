// Package transform fits the perspective transform mapping a raw
// captured frame to the code's canonical object space, given a set of
// finder-mark candidate positions.
package transform

import "errors"

// ErrNoValidArrangement is returned when no combination and permutation
// of the supplied finder candidates satisfies the spatial arrangement
// predicate.
var ErrNoValidArrangement = errors.New("transform: no finder candidate arrangement matches the expected layout")

// ErrAboveThreshold is returned when the best-scoring transform found
// still reprojects with more error than the configured threshold
// allows.
var ErrAboveThreshold = errors.New("transform: best-fit transform exceeds the rectify error threshold")

// ErrOutOfBoundTransform is returned when the fitted transform would
// sample outside the source frame while rectifying the code's object
// space.
var ErrOutOfBoundTransform = errors.New("transform: fitted transform samples outside the source frame")
