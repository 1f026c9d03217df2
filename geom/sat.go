package geom

// SummedAreaTable precomputes prefix sums of pixel intensity over a
// ColorImage so that the sum or mean of any axis-aligned region can be
// read in O(1). It backs LocalAdaptiveThreshold.
type SummedAreaTable struct {
	sums          []uint32
	width, height int
}

func intensity(c Color) uint32 {
	return (uint32(c.R) + uint32(c.G) + uint32(c.B)) / 3
}

// NewSummedAreaTable builds the table from img's per-pixel intensity
// (mean of R, G, B).
func NewSummedAreaTable(img ColorImage) SummedAreaTable {
	w, h := img.Width, img.Height
	sums := make([]uint32, w*h)

	get := func(x, y int) uint32 {
		if x < 0 || y < 0 {
			return 0
		}
		return sums[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			upLeft := get(x-1, y-1)
			up := get(x, y-1)
			left := get(x-1, y)
			curr := intensity(img.Get(x, y))
			sums[y*w+x] = up + left + curr - upLeft
		}
	}

	return SummedAreaTable{sums: sums, width: w, height: h}
}

// GetSum returns the inclusive prefix sum of intensities in [0,x] x
// [0,y]. Negative coordinates read as 0.
func (s SummedAreaTable) GetSum(x, y int) uint32 {
	if x < 0 || y < 0 {
		return 0
	}
	return s.sums[y*s.width+x]
}

// RegionSum returns the sum of intensities within the inclusive
// rectangle [topLeft, botRight]. It panics if the rectangle is
// malformed (topLeft past botRight on either axis).
func (s SummedAreaTable) RegionSum(topLeft, botRight PointI32) uint32 {
	if topLeft.X > botRight.X || topLeft.Y > botRight.Y {
		panic("geom: invalid summed-area region")
	}
	left := s.GetSum(topLeft.X-1, botRight.Y)
	up := s.GetSum(botRight.X, topLeft.Y-1)
	overlap := s.GetSum(topLeft.X-1, topLeft.Y-1)
	total := s.GetSum(botRight.X, botRight.Y)
	return total + overlap - left - up
}

// RegionSumXYWH is RegionSum expressed as a top-left corner and size.
func (s SummedAreaTable) RegionSumXYWH(x, y, w, h int) uint32 {
	return s.RegionSum(PointI32{X: x, Y: y}, PointI32{X: x + w - 1, Y: y + h - 1})
}

// RegionMean returns the mean intensity within the inclusive rectangle
// [topLeft, botRight].
func (s SummedAreaTable) RegionMean(topLeft, botRight PointI32) float64 {
	numPixels := (botRight.X - topLeft.X + 1) * (botRight.Y - topLeft.Y + 1)
	return float64(s.RegionSum(topLeft, botRight)) / float64(numPixels)
}

// RegionMeanXYWH is RegionMean expressed as a top-left corner and size.
func (s SummedAreaTable) RegionMeanXYWH(x, y, w, h int) float64 {
	return s.RegionMean(PointI32{X: x, Y: y}, PointI32{X: x + w - 1, Y: y + h - 1})
}
