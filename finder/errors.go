// Package finder locates finder-mark candidates (the circular
// registration marks a code carries) in a raw captured frame.
package finder

import "errors"

// ErrTooManyCandidates is returned when more circle-shaped clusters are
// found than the configured candidate budget allows.
var ErrTooManyCandidates = errors.New("finder: too many finder candidates")

// ErrTooFewCandidates is returned when fewer than four finder
// candidates are found; a homography cannot be fit from fewer than
// four point correspondences.
var ErrTooFewCandidates = errors.New("finder: fewer than four finder candidates")
