// Package imageio converts between this module's geom image types and
// the standard library's image.Image, so the cmd binaries can read and
// write ordinary PNG files.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/symcode/symcode/geom"
)

// ReadColorPNG decodes the PNG at path into a geom.ColorImage.
func ReadColorPNG(path string) (geom.ColorImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.ColorImage{}, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return geom.ColorImage{}, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return FromStdImage(img), nil
}

// FromStdImage converts any standard library image.Image into a
// geom.ColorImage, normalized to the image's own bounds.
func FromStdImage(img image.Image) geom.ColorImage {
	bounds := img.Bounds()
	out := geom.NewColorImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, geom.Color{
				R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8),
			})
		}
	}
	return out
}

// WriteBinaryPNG renders img as black-on-white and writes it as a PNG to
// path.
func WriteBinaryPNG(path string, img geom.BinaryImage) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return EncodeBinaryPNG(f, img)
}

// EncodeBinaryPNG writes img as a black-on-white PNG to w.
func EncodeBinaryPNG(w io.Writer, img geom.BinaryImage) error {
	out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.Get(x, y) {
				out.SetGray(x, y, color.Gray{Y: 0})
			} else {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return png.Encode(w, out)
}
