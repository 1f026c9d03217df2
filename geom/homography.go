package geom

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateCorrespondence is returned by FitHomography when the
// four source/destination point pairs are collinear or otherwise fail
// to determine a unique projective transform.
var ErrDegenerateCorrespondence = errors.New("geom: degenerate point correspondence")

// Homography is a 3x3 projective transform in row-major order, mapping
// homogeneous source coordinates to homogeneous destination
// coordinates.
type Homography struct {
	m [9]float64
}

// Identity returns the identity homography.
func Identity() Homography {
	return Homography{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// Forward maps a source-space point to destination space.
func (h Homography) Forward(p PointF64) PointF64 {
	x := h.m[0]*p.X + h.m[1]*p.Y + h.m[2]
	y := h.m[3]*p.X + h.m[4]*p.Y + h.m[5]
	w := h.m[6]*p.X + h.m[7]*p.Y + h.m[8]
	if w == 0 {
		return PointF64{}
	}
	return PointF64{X: x / w, Y: y / w}
}

// Inverse returns the homography that maps destination space back to
// source space.
func (h Homography) Inverse() (Homography, bool) {
	a := mat.NewDense(3, 3, h.m[:])
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return Homography{}, false
	}
	var out Homography
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.m[r*3+c] = inv.At(r, c)
		}
	}
	return out, true
}

// FitHomography solves the unique projective transform mapping each
// src[i] to dst[i] for four correspondences, using the standard direct
// linear transform formulation solved via Gaussian elimination. It is
// the geometry backbone of the transform fitter: each candidate
// permutation of finder positions is turned into a Homography this way
// before being scored.
func FitHomography(src, dst [4]PointF64) (Homography, error) {
	// Each correspondence (x,y) -> (u,v) contributes two rows to A*h = b,
	// where h is the 8 unknowns of the homography (h[8] is fixed to 1):
	//   x*h0 + y*h1 + h2 - u*x*h6 - u*y*h7 = u
	//   x*h3 + y*h4 + h5 - v*x*h6 - v*y*h7 = v
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y
		r0, r1 := 2*i, 2*i+1

		a.SetRow(r0, []float64{x, y, 1, 0, 0, 0, -u * x, -u * y})
		a.SetRow(r1, []float64{0, 0, 0, x, y, 1, -v * x, -v * y})
		b.SetVec(r0, u)
		b.SetVec(r1, v)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return Homography{}, ErrDegenerateCorrespondence
	}

	return Homography{m: [9]float64{
		h.AtVec(0), h.AtVec(1), h.AtVec(2),
		h.AtVec(3), h.AtVec(4), h.AtVec(5),
		h.AtVec(6), h.AtVec(7), 1,
	}}, nil
}
