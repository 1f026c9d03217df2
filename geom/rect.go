package geom

// Rect is an axis-aligned, half-open pixel rectangle: it covers columns
// [Left, Right) and rows [Top, Bottom).
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRectXYWH builds a Rect from a top-left corner and a size.
func NewRectXYWH(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the rectangle's width. A malformed rect (Right < Left)
// has a negative width rather than panicking — callers that need a
// normalized rect should check IsEmpty first.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the rectangle's height.
func (r Rect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether r covers no pixels.
func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Area returns the pixel count covered by r, or 0 if empty.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Center returns the rect's center point.
func (r Rect) Center() PointF64 {
	return PointF64{
		X: float64(r.Left+r.Right) / 2,
		Y: float64(r.Top+r.Bottom) / 2,
	}
}

// CornersF returns r's four corners as floating-point points, in
// top-left, top-right, bottom-left, bottom-right order. Used to map a
// rectangle's full footprint through a homography, rather than just its
// center.
func (r Rect) CornersF() [4]PointF64 {
	left, top := float64(r.Left), float64(r.Top)
	right, bottom := float64(r.Right), float64(r.Bottom)
	return [4]PointF64{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: left, Y: bottom},
		{X: right, Y: bottom},
	}
}

// Hit reports whether p lies within r.
func (r Rect) Hit(p PointI32) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// HitF reports whether p lies within r.
func (r Rect) HitF(p PointF64) bool {
	return p.X >= float64(r.Left) && p.X < float64(r.Right) &&
		p.Y >= float64(r.Top) && p.Y < float64(r.Bottom)
}

// Merge returns the smallest Rect containing both r and o. An empty
// operand does not contribute to the result.
func (r Rect) Merge(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	out := Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
	return out
}

// AddPoint grows r, if necessary, to cover p. The zero Rect is treated
// as empty rather than as containing the origin.
func (r Rect) AddPoint(p PointI32) Rect {
	if r.IsEmpty() {
		return Rect{Left: p.X, Top: p.Y, Right: p.X + 1, Bottom: p.Y + 1}
	}
	return Rect{
		Left:   min(r.Left, p.X),
		Top:    min(r.Top, p.Y),
		Right:  max(r.Right, p.X+1),
		Bottom: max(r.Bottom, p.Y+1),
	}
}

// Intersect returns the overlap of r and o, which IsEmpty if they don't
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
}

// Clamp restricts r to lie within [0,width) x [0,height).
func (r Rect) Clamp(width, height int) Rect {
	return r.Intersect(Rect{Left: 0, Top: 0, Right: width, Bottom: height})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
