package geom

import "math"

// PointI32 is an integer pixel-space point.
type PointI32 struct {
	X, Y int
}

// Add returns p+o.
func (p PointI32) Add(o PointI32) PointI32 { return PointI32{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p PointI32) Sub(o PointI32) PointI32 { return PointI32{p.X - o.X, p.Y - o.Y} }

// PointF64 is a floating-point point, used for canonical (object-space)
// and sub-pixel image-space coordinates.
type PointF64 struct {
	X, Y float64
}

// Add returns p+o.
func (p PointF64) Add(o PointF64) PointF64 { return PointF64{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p PointF64) Sub(o PointF64) PointF64 { return PointF64{p.X - o.X, p.Y - o.Y} }

// Norm returns the Euclidean length of p treated as a vector.
func (p PointF64) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns p/|p|. The zero vector is returned unchanged.
func (p PointF64) Normalize() PointF64 {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return PointF64{p.X / n, p.Y / n}
}

// Dist returns the Euclidean distance between p and o.
func (p PointF64) Dist(o PointF64) float64 { return p.Sub(o).Norm() }

// ToI32 truncates p to an integer pixel point.
func (p PointF64) ToI32() PointI32 { return PointI32{int(p.X), int(p.Y)} }

// InBounds reports whether p lies in [0,width) x [0,height).
func (p PointF64) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < float64(width) && p.Y >= 0 && p.Y < float64(height)
}

// InBounds reports whether p lies in [0,width) x [0,height).
func (p PointI32) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Clockwise reports whether the ordered triple a, b, c turns clockwise
// in image space (where y grows downward, so a positive cross product
// is the clockwise case — the opposite of the usual y-up convention).
// This is the spatial arrangement predicate building block used by the
// transform fitter.
func Clockwise(a, b, c PointF64) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return cross > 0
}
