package geom

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Resample scales src to exactly width x height using bilinear
// interpolation and re-binarizes the result at the midpoint gray level.
// This is the 4x-upsample step the glyph signature is computed from, and
// the resize used when comparing a candidate crop against a differently
// sized template.
func Resample(src BinaryImage, width, height int) BinaryImage {
	if src.Width == 0 || src.Height == 0 || width <= 0 || height <= 0 {
		return NewBinaryImage(width, height)
	}

	gray := image.NewGray(image.Rect(0, 0, src.Width, src.Height))
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := uint8(0)
			if src.Get(x, y) {
				v = 255
			}
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	out := NewBinaryImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Set(x, y, dst.GrayAt(x, y).Y >= 128)
		}
	}
	return out
}

// UpscaleFactor returns Resample(src, src.Width*factor, src.Height*factor).
// factor must be positive.
func UpscaleFactor(src BinaryImage, factor int) BinaryImage {
	return Resample(src, src.Width*factor, src.Height*factor)
}
