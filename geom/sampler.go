package geom

// SampleArea counts the foreground pixels of img within the half-open
// rectangle [x0,x1) x [y0,y1), clamped to img's bounds. It underlies the
// block-aggregate counts the glyph signature is built from.
func SampleArea(img BinaryImage, x0, y0, x1, y1 int) int {
	x0 = max(0, x0)
	y0 = max(0, y0)
	x1 = min(img.Width, x1)
	y1 = min(img.Height, y1)

	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if img.Get(x, y) {
				n++
			}
		}
	}
	return n
}
