package geom

// BinaryImage is a dense width x height grid of boolean foreground
// pixels, row-major. It underlies finder masks, rectified glyph crops,
// and template symbols.
type BinaryImage struct {
	Width, Height int
	Pixels        []bool
}

// NewBinaryImage allocates a cleared width x height image.
func NewBinaryImage(width, height int) BinaryImage {
	return BinaryImage{Width: width, Height: height, Pixels: make([]bool, width*height)}
}

// Get returns the pixel at (x, y). Out-of-bounds coordinates read as
// false (background) rather than panicking, since callers frequently
// probe one pixel past a cluster's bounding box.
func (b BinaryImage) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Pixels[y*b.Width+x]
}

// Set writes the pixel at (x, y). It is a no-op out of bounds.
func (b BinaryImage) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pixels[y*b.Width+x] = v
}

// Area returns the number of foreground pixels.
func (b BinaryImage) Area() int {
	n := 0
	for _, p := range b.Pixels {
		if p {
			n++
		}
	}
	return n
}

// Bounds returns the image's full-extent rect.
func (b BinaryImage) Bounds() Rect { return NewRectXYWH(0, 0, b.Width, b.Height) }

// Crop returns the sub-image covered by r, clamped to b's bounds.
func (b BinaryImage) Crop(r Rect) BinaryImage {
	r = r.Clamp(b.Width, b.Height)
	out := NewBinaryImage(r.Width(), r.Height())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Set(x, y, b.Get(r.Left+x, r.Top+y))
		}
	}
	return out
}

// Paste writes src into b with its top-left corner at topLeft, clipping
// to b's bounds. Used by the code generator to place finder marks and
// glyph templates onto a blank canvas.
func (b BinaryImage) Paste(src BinaryImage, topLeft PointI32) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.Get(x, y) {
				b.Set(topLeft.X+x, topLeft.Y+y, true)
			}
		}
	}
}

// DiffArea returns the number of pixels at which b and o disagree. It
// treats out-of-range coordinates of the larger image as background.
// Used by the glyph library's pixel-difference tiebreak.
func (b BinaryImage) DiffArea(o BinaryImage) int {
	w, h := b.Width, b.Height
	if o.Width > w {
		w = o.Width
	}
	if o.Height > h {
		h = o.Height
	}
	diff := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.Get(x, y) != o.Get(x, y) {
				diff++
			}
		}
	}
	return diff
}

// Color is an 8-bit RGBA pixel.
type Color struct {
	R, G, B, A uint8
}

// Luma returns the ITU-R BT.601 luma approximation of c, in [0,255].
func (c Color) Luma() uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}

// ColorImage is a dense width x height grid of RGBA pixels, row-major.
// It is the input to the finder/rectify stages before binarization.
type ColorImage struct {
	Width, Height int
	Pixels        []Color
}

// NewColorImage allocates a cleared (transparent black) width x height
// image.
func NewColorImage(width, height int) ColorImage {
	return ColorImage{Width: width, Height: height, Pixels: make([]Color, width*height)}
}

// Get returns the pixel at (x, y), or the zero Color out of bounds.
func (c ColorImage) Get(x, y int) Color {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Color{}
	}
	return c.Pixels[y*c.Width+x]
}

// Set writes the pixel at (x, y). It is a no-op out of bounds.
func (c ColorImage) Set(x, y int, v Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Pixels[y*c.Width+x] = v
}

// Bounds returns the image's full-extent rect.
func (c ColorImage) Bounds() Rect { return NewRectXYWH(0, 0, c.Width, c.Height) }

// SampleBilinear reads the color at sub-pixel position p using bilinear
// interpolation of its four neighbors. ok is false when p (inflated by
// one pixel for the interpolation footprint) falls outside the image.
func (c ColorImage) SampleBilinear(p PointF64) (Color, bool) {
	if p.X < 0 || p.Y < 0 || p.X > float64(c.Width-1) || p.Y > float64(c.Height-1) {
		return Color{}, false
	}
	x0 := int(p.X)
	y0 := int(p.Y)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= c.Width {
		x1 = x0
	}
	if y1 >= c.Height {
		y1 = y0
	}
	fx := p.X - float64(x0)
	fy := p.Y - float64(y0)

	c00, c10 := c.Get(x0, y0), c.Get(x1, y0)
	c01, c11 := c.Get(x0, y1), c.Get(x1, y1)

	lerp := func(a, b uint8, t float64) float64 { return float64(a) + (float64(b)-float64(a))*t }
	top := func(ch func(Color) uint8) float64 { return lerp(ch(c00), ch(c10), fx) }
	bot := func(ch func(Color) uint8) float64 { return lerp(ch(c01), ch(c11), fx) }
	mix := func(ch func(Color) uint8) uint8 {
		return uint8(lerp(uint8(top(ch)), uint8(bot(ch)), fy))
	}

	return Color{
		R: mix(func(c Color) uint8 { return c.R }),
		G: mix(func(c Color) uint8 { return c.G }),
		B: mix(func(c Color) uint8 { return c.B }),
		A: mix(func(c Color) uint8 { return c.A }),
	}, true
}

// ToGray returns the luma-binarized image: pixels with luma >= threshold
// are foreground.
func (c ColorImage) ToGray(threshold uint8) BinaryImage {
	out := NewBinaryImage(c.Width, c.Height)
	for i, px := range c.Pixels {
		out.Pixels[i] = px.Luma() >= threshold
	}
	return out
}
