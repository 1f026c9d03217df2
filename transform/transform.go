package transform

import (
	"math"

	"github.com/symcode/symcode/geom"
)

// CalculateCheckPoints derives one check point per finder position,
// taken at the top of each finder mark in object space: the Y
// coordinate is shifted up by half the configured symbol height. These
// are the points a fitted transform is scored against, since they're
// close to the finders but don't coincide with the points the
// homography was solved from.
func CalculateCheckPoints(finderPositionsObject []geom.PointF64, symbolHeight int) []geom.PointF64 {
	out := make([]geom.PointF64, len(finderPositionsObject))
	for i, p := range finderPositionsObject {
		out[i] = geom.PointF64{X: p.X, Y: p.Y - float64(symbolHeight)/2}
	}
	return out
}

// CorrectSpatialArrangement reports whether four finder positions, in
// image space and in the candidate order being tested, match the
// reference diamond layout's clockwise winding: 0->1->2, 0->3->1, and
// 2->1->3 must each turn clockwise.
func CorrectSpatialArrangement(p []geom.PointF64) bool {
	if len(p) != 4 {
		return false
	}
	return geom.Clockwise(p[0], p[1], p[2]) &&
		geom.Clockwise(p[0], p[3], p[1]) &&
		geom.Clockwise(p[2], p[1], p[3])
}

// EvaluateTransform scores how well imgToObj (mapping image space to
// object space) fits, given the image-space finder positions it was
// solved from and the object-space check points. Each check point is
// reprojected back to image space as a vector from its own finder; the
// score blends two things those vectors should agree on if the fit is
// genuine: 0.7 weight on direction (every finder's vector should point
// the same way, rotation-invariant alignment), 0.3 weight on length
// (every finder's vector should be about the same size, scale
// consistency). Lower is better; it returns +Inf if imgToObj can't be
// inverted, or if any check point reprojects outside the frame it was
// captured in.
func EvaluateTransform(imgToObj geom.Homography, finderSrcPoints, checkPoints []geom.PointF64, frameWidth, frameHeight int) float64 {
	objToImg, ok := imgToObj.Inverse()
	if !ok {
		return math.Inf(1)
	}

	k := len(finderSrcPoints)
	vectors := make([]geom.PointF64, k)
	dist := make([]float64, k)
	for i := 0; i < k; i++ {
		checkImg := objToImg.Forward(checkPoints[i])
		if !checkImg.InBounds(frameWidth, frameHeight) {
			return math.Inf(1)
		}
		vectors[i] = checkImg.Sub(finderSrcPoints[i])
		dist[i] = vectors[i].Norm()
	}

	minD, maxD := dist[0], dist[0]
	for _, d := range dist[1:] {
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	u0 := vectors[0].Normalize()
	var directionError float64
	for i := 1; i < k; i++ {
		ui := vectors[i].Normalize()
		directionError += u0.Dist(ui)
	}
	directionError /= float64(k - 1)

	scaleError := 1 - minD/maxD
	return 0.7*directionError + 0.3*scaleError
}

// Result is a fitted transform together with the finder candidate
// indices (into the input slice) it was built from, in the order that
// matched the reference layout.
type Result struct {
	Homography   geom.Homography
	CandidateIdx []int
	Score        float64
}

// boundingBoxOutOfBounds reports whether any corner of rect, mapped
// through h (image space to object space), lands outside
// [0,codeWidth) x [0,codeHeight). This sanity-checks that the full
// footprint of a finder candidate — not just its center — rectifies
// into the canonical code canvas.
func boundingBoxOutOfBounds(h geom.Homography, rect geom.Rect, codeWidth, codeHeight int) bool {
	for _, corner := range rect.CornersF() {
		if !h.Forward(corner).InBounds(codeWidth, codeHeight) {
			return true
		}
	}
	return false
}

// Fit searches every ordered choice of len(objectPositions) candidates
// out of candidateRects for the one whose homography against
// objectPositions scores lowest under EvaluateTransform, restricted to
// choices that pass CorrectSpatialArrangement. Before scoring, it also
// rejects (scores +Inf) any choice whose second candidate rectangle
// doesn't fully rectify inside the code canvas. It returns
// ErrNoValidArrangement if no choice passes the arrangement check, and
// ErrAboveThreshold if the best passing score still exceeds
// errorThreshold.
func Fit(candidateRects []geom.Rect, objectPositions []geom.PointF64, symbolHeight, codeWidth, codeHeight, frameWidth, frameHeight int, errorThreshold float64) (Result, error) {
	numFinders := len(objectPositions)
	if len(candidateRects) < numFinders {
		return Result{}, ErrNoValidArrangement
	}

	checkPoints := CalculateCheckPoints(objectPositions, symbolHeight)

	best := Result{Score: math.Inf(1)}
	found := false

	combinations(len(candidateRects), numFinders, func(combo []int) {
		permutations(combo, func(order []int) {
			srcPts := make([]geom.PointF64, numFinders)
			for i, idx := range order {
				srcPts[i] = candidateRects[idx].Center()
			}
			if !CorrectSpatialArrangement(srcPts) {
				return
			}

			var src, dst [4]geom.PointF64
			if numFinders != 4 {
				return
			}
			copy(src[:], srcPts)
			copy(dst[:], objectPositions)

			h, err := geom.FitHomography(src, dst)
			if err != nil {
				return
			}

			score := math.Inf(1)
			if !boundingBoxOutOfBounds(h, candidateRects[order[1]], codeWidth, codeHeight) {
				score = EvaluateTransform(h, srcPts, checkPoints, frameWidth, frameHeight)
			}

			if !found || score < best.Score {
				best = Result{Homography: h, CandidateIdx: append([]int(nil), order...), Score: score}
				found = true
			}
		})
	})

	if !found {
		return Result{}, ErrNoValidArrangement
	}
	if best.Score > errorThreshold {
		return Result{}, ErrAboveThreshold
	}
	return best, nil
}

// OutOfBound reports whether any corner of the code's object-space
// bounding box reprojects, through objToImg (object space to image
// space), to a point outside a frame of the given width and height.
func OutOfBound(objToImg geom.Homography, codeWidth, codeHeight, frameWidth, frameHeight int) bool {
	w := float64(codeWidth - 1)
	h := float64(codeHeight - 1)
	corners := [4]geom.PointF64{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}}
	for _, c := range corners {
		p := objToImg.Forward(c)
		if !p.InBounds(frameWidth, frameHeight) {
			return true
		}
	}
	return false
}
