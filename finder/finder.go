package finder

import (
	"math"

	"github.com/symcode/symcode/geom"
)

// CircleMark renders the canonical finder shape at the given size. The
// generator stage rasterizes one of these at each configured finder
// position.
func CircleMark(width, height int) geom.BinaryImage {
	return geom.Circle(width, height).Image
}

// isFinder reports whether image plausibly depicts a finder mark,
// tolerating the perspective skew a circle picks up when photographed
// off-axis: it tests the shape and five rotations of it, accepting if
// any rotation reads as ellipse-like.
func isFinder(image geom.BinaryImage) bool {
	const steps = 6
	shape := geom.NewShape(image)
	for i := 0; i < steps; i++ {
		candidate := shape
		if i > 0 {
			angle := float64(i) * (math.Pi / 2) / float64(steps)
			candidate = shape.Rotate(angle).Crop()
		}
		if candidate.IsEllipse() {
			return true
		}
	}
	return false
}

// Candidates locates every finder-shaped cluster in a binarized frame
// and returns each one's bounding rect. maxCandidates caps the accepted
// count; exceeding it is reported as ErrTooManyCandidates rather than
// silently truncating, since an over-cluttered scene usually means the
// frame itself is unusable.
func Candidates(binary geom.BinaryImage, maxCandidates int) ([]geom.Rect, error) {
	clusters := geom.ClusterConnectedComponents(binary)

	var rects []geom.Rect
	for _, cl := range clusters {
		crop := binary.Crop(cl.Bound)
		if isFinder(crop) {
			rects = append(rects, cl.Bound)
		}
	}

	if len(rects) > maxCandidates {
		return nil, ErrTooManyCandidates
	}
	if len(rects) < 4 {
		return nil, ErrTooFewCandidates
	}
	return rects, nil
}

// Locate binarizes frame with a global adaptive threshold and extracts
// finder candidates from it.
func Locate(frame geom.ColorImage, maxCandidates int) ([]geom.Rect, error) {
	binary := geom.GlobalAdaptiveThreshold(frame)
	return Candidates(binary, maxCandidates)
}
