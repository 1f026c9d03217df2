package geom

import "sort"

// percentile returns the p-th percentile (0-100) of a sorted copy of
// samples using nearest-rank interpolation.
func percentile(samples []int32, p int) int32 {
	sorted := append([]int32(nil), samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func intensitySamples(img ColorImage) []int32 {
	samples := make([]int32, len(img.Pixels))
	for i, c := range img.Pixels {
		samples[i] = int32(c.R) + int32(c.G) + int32(c.B)
	}
	return samples
}

// GlobalAdaptiveThreshold binarizes img using a single threshold derived
// from the 10th/90th percentile of the per-pixel intensity distribution,
// which keeps the cut point stable under uneven scene lighting.
func GlobalAdaptiveThreshold(img ColorImage) BinaryImage {
	samples := intensitySamples(img)
	threshold := uint32(percentile(samples, 10)+percentile(samples, 90)) / 6

	out := NewBinaryImage(img.Width, img.Height)
	for i, c := range img.Pixels {
		sum := uint32(c.R) + uint32(c.G) + uint32(c.B)
		out.Pixels[i] = sum < 3*threshold
	}
	return out
}

// LocalAdaptiveThreshold binarizes img by comparing each pixel against
// the mean intensity of the square neighborhood reaching patchSize/2
// pixels to each side of it (clamped at the image edges), offset down
// by a percentage of the image's dynamic
// range. It copes with codes lit unevenly across their own surface,
// where a single global cut point would clip one side.
func LocalAdaptiveThreshold(img ColorImage, patchSize int, offsetPercentage float64) BinaryImage {
	samples := intensitySamples(img)
	dynamicRange := float64(percentile(samples, 90)-percentile(samples, 10)) / 3
	offset := int32(dynamicRange * offsetPercentage)

	sat := NewSummedAreaTable(img)
	half := patchSize >> 1

	out := NewBinaryImage(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			tl := PointI32{X: max(0, x-half), Y: max(0, y-half)}
			br := PointI32{X: min(img.Width-1, x+half), Y: min(img.Height-1, y+half)}
			mean := sat.RegionMean(tl, br)
			threshold := int32(mean) - offset
			if threshold < 0 {
				threshold = 0
			}

			c := img.Get(x, y)
			cMean := int32(uint32(c.R)+uint32(c.G)+uint32(c.B)) / 3
			out.Set(x, y, cMean < threshold)
		}
	}
	return out
}
